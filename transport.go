package bitcore

import (
	"io"

	"go.bug.st/serial"
)

// Transport is the minimal device handle the connection layer drives. A
// Transport is owned by exactly one connection slot and is never accessed
// outside the slot's lock. Read returns (0, nil) when the configured read
// timeout expires without data.
type Transport interface {
	io.ReadWriteCloser

	// Drain blocks until all buffered output has been transmitted.
	Drain() error
}

// Opener opens a Transport for the named device using the given
// configuration. The default opener drives a real serial port.
type Opener func(device string, cfg Config) (Transport, error)

// openSerialPort is the default Opener, backed by go.bug.st/serial.
func openSerialPort(device string, cfg Config) (Transport, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		Parity:   parityMode(cfg.Parity),
		StopBits: stopBitsMode(cfg.StopBits),
	}

	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, err
	}

	if err := port.SetReadTimeout(cfg.Timeout); err != nil {
		port.Close()
		return nil, err
	}

	return port, nil
}

func parityMode(p Parity) serial.Parity {
	switch p {
	case ParityOdd:
		return serial.OddParity
	case ParityEven:
		return serial.EvenParity
	default:
		return serial.NoParity
	}
}

func stopBitsMode(bits int) serial.StopBits {
	if bits == 2 {
		return serial.TwoStopBits
	}
	return serial.OneStopBit
}
