package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LineMsg carries one received line into the UI.
type LineMsg struct {
	Timestamp time.Time
	Line      string
}

// StatusMsg reports a connection state change.
type StatusMsg struct {
	Connected bool
	Err       error
}

type listenKeys struct {
	Quit  key.Binding
	Clear key.Binding
	Help  key.Binding
}

func newListenKeys() listenKeys {
	return listenKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k listenKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Clear, k.Help}
}

func (k listenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit, k.Clear, k.Help}}
}

// ListenModel is the Bubble Tea model behind `bitcore listen`: a scrolling
// viewport of received lines with a status bar underneath.
type ListenModel struct {
	device   string
	viewport viewport.Model
	lines    []string

	showTimestamps bool
	connecting     bool
	connected      bool
	err            error
	ready          bool

	help help.Model
	keys listenKeys
}

// NewListen creates the listen UI for the given device.
func NewListen(device string, showTimestamps bool) *ListenModel {
	return &ListenModel{
		device:         device,
		viewport:       viewport.New(80, 20),
		showTimestamps: showTimestamps,
		connecting:     true,
		help:           help.New(),
		keys:           newListenKeys(),
	}
}

func (m *ListenModel) Init() tea.Cmd {
	return nil
}

func (m *ListenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// One line each for the border and the status bar.
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2
		m.ready = true

	case StatusMsg:
		m.connecting = false
		m.connected = msg.Connected
		m.err = msg.Err

	case LineMsg:
		m.lines = append(m.lines, m.formatLine(msg))
		m.viewport.SetContent(strings.Join(m.lines, "\n"))
		m.viewport.GotoBottom()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.lines = nil
			m.viewport.SetContent("")

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ListenModel) View() string {
	var content string
	if m.ready {
		content = m.viewport.View()
	} else {
		content = "Initializing..."
	}

	sections := []string{
		contentBorderStyle.Render(content),
	}

	if m.help.ShowAll {
		sections = append(sections, helpBoxStyle.Render(m.help.View(m.keys)))
	}

	sections = append(sections, m.statusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ListenModel) formatLine(msg LineMsg) string {
	if !m.showTimestamps {
		return msg.Line
	}
	ts := timestampStyle.Render(msg.Timestamp.Format("15:04:05.000"))
	return fmt.Sprintf("%s %s", ts, msg.Line)
}

func (m *ListenModel) statusBar() string {
	var status string
	switch {
	case m.connecting:
		status = statusConnectingStyle.Render("Connecting...")
	case m.connected:
		status = statusConnectedStyle.Render("Connected")
	case m.err != nil:
		status = statusDisconnectedStyle.Render(fmt.Sprintf("Disconnected: %v", m.err))
	default:
		status = statusDisconnectedStyle.Render("Disconnected")
	}

	title := titleStyle.Render("bitcore listen")
	clock := timestampStyle.Render(time.Now().Format("15:04:05"))

	return fmt.Sprintf("%s %s  %s  %s", title, m.device, status, clock)
}
