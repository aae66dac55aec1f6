package bitcore

import (
	"fmt"
	"sort"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// PortInfo describes one discoverable serial device. Enumeration produces a
// fresh snapshot on every call; nothing is cached between calls.
type PortInfo struct {
	Name         string
	IsUSB        bool
	VendorID     string
	ProductID    string
	SerialNumber string
	Product      string
}

// ListPorts returns the device paths of the serial ports currently present
// on the system, sorted for consistent ordering.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}
	sort.Strings(ports)
	return ports, nil
}

// ListPortInfo returns detailed descriptors for the serial ports currently
// present on the system, including USB metadata where available.
func ListPortInfo() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumeration, err)
	}

	infos := make([]PortInfo, 0, len(details))
	for _, d := range details {
		infos = append(infos, PortInfo{
			Name:         d.Name,
			IsUSB:        d.IsUSB,
			VendorID:     d.VID,
			ProductID:    d.PID,
			SerialNumber: d.SerialNumber,
			Product:      d.Product,
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}
