// Package bitcore provides thread-safe serial communication with automatic
// connection management and bounded retries.
//
// It sits between application code and the low-level serial transport: one
// logical connection can be opened, closed, reopened and used from many
// goroutines, while transient I/O failures are absorbed by a configurable
// retry budget. Permanent failures are never masked; every operation returns
// a typed error.
//
// # Basic Usage
//
// Open a device with default configuration (9600 baud, 1s timeout, 3
// retries):
//
//	port, err := bitcore.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	n, err := port.WriteString("AT\r\n")
//	line, err := port.ReadLine()
//
// # Configuration Options
//
// Use functional options for custom configuration:
//
//	port, err := bitcore.Open("/dev/ttyUSB0",
//	    bitcore.WithBaudRate(115200),
//	    bitcore.WithTimeout(500*time.Millisecond),
//	    bitcore.WithRetries(5),
//	    bitcore.WithRetryBackoff(1.5),
//	)
//
// # Connection Management
//
// A Serial handle owns a lock-protected connection slot. When a read or
// write fails with a hard I/O error the handle is dropped and the next
// attempt reopens the device, so an unplugged-and-replugged adapter recovers
// without any caller-side bookkeeping. Retries are bounded: with
// WithRetries(r) a failing operation makes at most r+1 attempts before
// returning an *IOError carrying the attempt count and the last cause.
//
// Close and Connect are idempotent; closing discards the device handle even
// if the close itself fails.
//
// # Port Discovery
//
// List available serial ports and USB device metadata:
//
//	infos, err := bitcore.ListPortInfo()
//	for _, info := range infos {
//	    fmt.Printf("%s (VID=%s PID=%s Serial=%s)\n",
//	        info.Name, info.VendorID, info.ProductID, info.SerialNumber)
//	}
//
// # Error Handling
//
// Sentinel errors support errors.Is checks:
//
//	var (
//	    ErrInvalidConfig   // configuration violates an invariant
//	    ErrInvalidBaudRate // non-positive or unsupported baud rate
//	    ErrNotConnected    // slot empty and implicit reconnect failed
//	    ErrTimeout         // an attempt exceeded the configured timeout
//	    ErrEnumeration     // port discovery failed
//	)
//
// Failures that carry data are structured: *ConnectError wraps the cause of
// a failed open, *IOError wraps the last cause and attempt count of an
// exhausted retry cycle. Both unwrap, so
// errors.Is(err, bitcore.ErrTimeout) sees through an *IOError whose last
// attempt timed out.
//
// # Concurrency
//
// All operations are synchronous, blocking calls; the library runs no
// background goroutines. Operations on one handle are totally ordered by
// the slot lock, which is held for at most one transport call at a time;
// the retry loop releases it between attempts. Handles for different
// devices are fully independent.
package bitcore
