/*
Copyright © 2026 The bitcore authors
*/
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bitcore-go/bitcore"
	"github.com/bitcore-go/bitcore/internal/tui"
)

// listenCmd represents the listen command
var listenCmd = &cobra.Command{
	Use:   "listen <port>",
	Short: "Listen for lines on a serial port with a live display",
	Long: `Listen for incoming data on a serial port and display it line by
line in a scrolling terminal UI.

The connection is managed by the retry layer: if the device drops, the next
read reconnects automatically. Read timeouts while the line is idle are
expected and do not end the session.

Example usage:
  bitcore listen /dev/ttyUSB0
  bitcore listen /dev/ttyUSB0 --baud 115200 --no-timestamps`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]
		noTimestamps, _ := cmd.Flags().GetBool("no-timestamps")

		if err := runListenTUI(portPath, !noTimestamps); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)

	listenCmd.Flags().Bool("no-timestamps", false, "Hide timestamps from output")
}

func runListenTUI(portPath string, showTimestamps bool) error {
	opts, err := serialOptions()
	if err != nil {
		return err
	}

	m := tui.NewListen(portPath, showTimestamps)
	p := tea.NewProgram(m, tea.WithAltScreen())

	done := make(chan struct{})

	go func() {
		port, err := bitcore.Open(portPath, opts...)
		if err != nil {
			p.Send(tui.StatusMsg{Connected: false, Err: err})
			return
		}
		defer port.Close()

		p.Send(tui.StatusMsg{Connected: true})

		for {
			select {
			case <-done:
				return
			default:
			}

			line, err := port.ReadLine()
			if err != nil {
				if errors.Is(err, bitcore.ErrTimeout) {
					// idle line, keep listening
					continue
				}
				p.Send(tui.StatusMsg{Connected: false, Err: err})
				return
			}

			p.Send(tui.LineMsg{Timestamp: time.Now(), Line: line})
		}
	}()

	_, err = p.Run()
	close(done)
	return err
}
