/*
Copyright © 2026 The bitcore authors
*/
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bitcore-go/bitcore"
	"github.com/bitcore-go/bitcore/internal/tui"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial ports",
	Long: `List all serial ports currently present on the system.

Each invocation takes a fresh snapshot; unplugged devices disappear from the
listing immediately. USB metadata (vendor/product identifiers, serial
number) is shown in detailed and table output where the OS exposes it.`,
	Run: func(cmd *cobra.Command, args []string) {
		filter, _ := cmd.Flags().GetString("filter")
		detailed, _ := cmd.Flags().GetBool("detailed")
		tableFormat, _ := cmd.Flags().GetBool("table")

		if !detailed && !tableFormat {
			ports, err := bitcore.ListPorts()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
				os.Exit(1)
			}
			if len(ports) == 0 {
				fmt.Println("No serial ports found")
				return
			}
			for _, port := range ports {
				fmt.Println(port)
			}
			return
		}

		infos, err := bitcore.ListPortInfo()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
			os.Exit(1)
		}

		infos = filterPorts(infos, filter)
		if len(infos) == 0 {
			if filter != "" {
				fmt.Printf("No serial ports found matching filter: %s\n", filter)
			} else {
				fmt.Println("No serial ports found")
			}
			return
		}

		if tableFormat {
			fmt.Printf("Found %d serial port(s):\n\n", len(infos))
			fmt.Println(tui.PortsTable(infos))
			return
		}

		renderDetailed(infos)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("filter", "f", "", "Filter by port type: usb, builtin, all")
	listCmd.Flags().BoolP("detailed", "d", false, "Show USB metadata for each port")
	listCmd.Flags().Bool("table", false, "Display output in a styled table format")
}

// filterPorts filters the port list based on the specified filter type
func filterPorts(infos []bitcore.PortInfo, filter string) []bitcore.PortInfo {
	if filter == "" || strings.EqualFold(filter, "all") {
		return infos
	}

	var filtered []bitcore.PortInfo
	for _, info := range infos {
		switch strings.ToLower(filter) {
		case "usb":
			if info.IsUSB {
				filtered = append(filtered, info)
			}
		case "builtin":
			if !info.IsUSB {
				filtered = append(filtered, info)
			}
		}
	}
	return filtered
}

// renderDetailed prints one styled line per port with USB metadata
func renderDetailed(infos []bitcore.PortInfo) {
	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	metaStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	for _, info := range infos {
		line := nameStyle.Render(info.Name)
		if info.IsUSB {
			meta := fmt.Sprintf("  VID=%s PID=%s", info.VendorID, info.ProductID)
			if info.SerialNumber != "" {
				meta += fmt.Sprintf(" Serial=%s", info.SerialNumber)
			}
			if info.Product != "" {
				meta += fmt.Sprintf(" (%s)", info.Product)
			}
			line += metaStyle.Render(meta)
		}
		fmt.Println(line)
	}
}
