package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/bitcore-go/bitcore"
)

const (
	columnKeyPort    = "port"
	columnKeyType    = "type"
	columnKeyVID     = "vid"
	columnKeyPID     = "pid"
	columnKeySerial  = "serial"
	columnKeyProduct = "product"
)

// PortsTable renders discovered ports as a styled static table.
func PortsTable(infos []bitcore.PortInfo) string {
	columns := []table.Column{
		table.NewColumn(columnKeyPort, "Port", 18),
		table.NewColumn(columnKeyType, "Type", 8),
		table.NewColumn(columnKeyVID, "VID", 6),
		table.NewColumn(columnKeyPID, "PID", 6),
		table.NewColumn(columnKeySerial, "Serial", 16),
		table.NewColumn(columnKeyProduct, "Product", 28),
	}

	rows := make([]table.Row, 0, len(infos))
	for _, info := range infos {
		portType := "builtin"
		if info.IsUSB {
			portType = "USB"
		}
		rows = append(rows, table.NewRow(table.RowData{
			columnKeyPort:    info.Name,
			columnKeyType:    portType,
			columnKeyVID:     info.VendorID,
			columnKeyPID:     info.ProductID,
			columnKeySerial:  info.SerialNumber,
			columnKeyProduct: info.Product,
		}))
	}

	t := table.New(columns).
		WithRows(rows).
		BorderRounded().
		WithBaseStyle(lipgloss.NewStyle().Foreground(colText))

	return t.View()
}
