/*
Copyright © 2026 The bitcore authors
*/
package cli

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bitcore-go/bitcore"
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send [data] <port>",
	Short: "Send data to a serial port",
	Long: `Send data to a serial port with configurable options.

Data can be provided as:
- Command line argument: bitcore send "Hello World" /dev/ttyUSB0
- From stdin (pipe): echo "test data" | bitcore send /dev/ttyUSB0
- Interactive mode: bitcore send /dev/ttyUSB0 (prompts for input)

Writes go through the retry layer: a transient device error triggers a
reconnect and another attempt, up to the configured retry budget.

Example usage:
  bitcore send "Hello World" /dev/ttyUSB0
  bitcore send "AT+GMR" /dev/ttyUSB0 --newline --reply
  echo "test" | bitcore send /dev/ttyUSB0`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var data string
		var portPath string

		// Parse arguments: either "send data port" or "send port"
		if len(args) == 1 {
			portPath = args[0]
			stat, err := os.Stdin.Stat()
			if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
				data = promptForData()
			} else {
				stdinData, err := io.ReadAll(os.Stdin)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
					os.Exit(1)
				}
				data = strings.TrimRight(string(stdinData), "\r\n")
			}
		} else {
			data = args[0]
			portPath = args[1]
		}

		addNewline, _ := cmd.Flags().GetBool("newline")
		hexMode, _ := cmd.Flags().GetBool("hex")
		readReply, _ := cmd.Flags().GetBool("reply")

		if hexMode {
			decoded, err := parseHexString(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid hex data: %v\n", err)
				os.Exit(1)
			}
			data = decoded
		}

		if addNewline && !hexMode {
			data += "\n"
		}

		if err := sendData(portPath, data, readReply); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().BoolP("newline", "n", false, "Add newline character to the end of data")
	sendCmd.Flags().BoolP("hex", "x", false, "Interpret data as hexadecimal (e.g., '48656c6c6f' for 'Hello')")
	sendCmd.Flags().Bool("reply", false, "Read one response line after sending")
}

func promptForData() string {
	promptStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	fmt.Print(promptStyle.Render("Enter data to send: "))

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return scanner.Text()
	}
	return ""
}

func parseHexString(hexStr string) (string, error) {
	hexStr = strings.ReplaceAll(hexStr, " ", "")
	hexStr = strings.ReplaceAll(hexStr, "0x", "")
	hexStr = strings.ReplaceAll(hexStr, "0X", "")

	decoded, err := hex.DecodeString(hexStr)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func sendData(portPath, data string, readReply bool) error {
	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("99")).
		Bold(true)

	successStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("40")).
		Bold(true)

	opts, err := serialOptions()
	if err != nil {
		return err
	}

	fmt.Printf("%s Opening %s...\n", infoStyle.Render("⚡"), portPath)

	port, err := bitcore.Open(portPath, opts...)
	if err != nil {
		return err
	}
	defer port.Close()

	fmt.Printf("%s Connected successfully\n", successStyle.Render("✓"))

	n, err := port.WriteString(data)
	if err != nil {
		return err
	}

	fmt.Printf("%s Sent %d bytes\n", successStyle.Render("✓"), n)

	if readReply {
		line, err := port.ReadLine()
		if err != nil {
			return fmt.Errorf("waiting for reply: %w", err)
		}
		fmt.Printf("%s Reply: %s\n", infoStyle.Render("📥"), line)
	}

	return nil
}
