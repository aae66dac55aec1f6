package bitcore

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Serial is a connection handle for a single serial device. It is safe for
// concurrent use: all goroutines sharing a Serial drive the same connection
// slot, and operations on it are serialized per attempt.
type Serial struct {
	device string
	config Config
	logger *zap.Logger
	conn   *slot
}

// Open connects to the named serial device with default configuration
// (9600 baud, 1s timeout, 3 retries) plus any options. It fails when the
// initial open fails; no "connect later" state is exposed.
func Open(device string, opts ...Option) (*Serial, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	return OpenConfig(device, config)
}

// OpenConfig connects to the named serial device using an explicit
// configuration value.
func OpenConfig(device string, config Config) (*Serial, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Serial{
		device: device,
		config: config,
		logger: logger,
		conn:   &slot{},
	}

	if err := s.Connect(); err != nil {
		return nil, err
	}

	logger.Info("serial device connected",
		zap.String("device", device),
		zap.Int("baud_rate", config.BaudRate),
	)

	return s, nil
}

// Connect opens the underlying device if it is not already open. Connecting
// an already connected handle succeeds as a no-op.
func (s *Serial) Connect() error {
	return s.conn.connect(s.device, s.config)
}

// Close closes the underlying device. The connection state is discarded even
// when the close reports an error, and closing an already closed handle
// succeeds as a no-op. A later operation or explicit Connect reopens the
// device.
func (s *Serial) Close() error {
	err := s.conn.disconnect()
	if err != nil {
		s.logger.Warn("serial close failed",
			zap.String("device", s.device),
			zap.Error(err),
		)
		return err
	}
	s.logger.Debug("serial device closed", zap.String("device", s.device))
	return nil
}

// Connected reports whether the handle currently holds an open device.
func (s *Serial) Connected() bool {
	return s.conn.connected()
}

// Device returns the device path this handle was opened with.
func (s *Serial) Device() string {
	return s.device
}

// Config returns the resolved configuration.
func (s *Serial) Config() Config {
	return s.config
}

// Write writes data to the serial device, retrying per the configured retry
// budget. A write of zero bytes succeeds without touching the device.
// Partial writes are reported as success with the actual count.
func (s *Serial) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	return s.do("write", func(tr Transport) (int, error) {
		return tr.Write(data)
	})
}

// Read reads into buf from the serial device, retrying per the configured
// retry budget. A zero-length buffer succeeds without touching the device.
// A read deadline expiring with no data counts as a Timeout failure.
func (s *Serial) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	return s.do("read", func(tr Transport) (int, error) {
		n, err := tr.Read(buf)
		if err != nil {
			return n, err
		}
		if n == 0 {
			return 0, ErrTimeout
		}
		return n, nil
	})
}

// WriteString writes the byte encoding of data. No framing is added.
func (s *Serial) WriteString(data string) (int, error) {
	return s.Write([]byte(data))
}

// ReadFull reads exactly len(buf) bytes, assembling partial reads until the
// configured timeout elapses. On timeout the bytes read so far remain in buf
// but the call fails with ErrTimeout.
func (s *Serial) ReadFull(buf []byte) error {
	deadline := time.Now().Add(s.config.Timeout)
	total := 0

	for total < len(buf) {
		if !time.Now().Before(deadline) {
			return fmt.Errorf("%w: read %d of %d bytes", ErrTimeout, total, len(buf))
		}

		n, err := s.Read(buf[total:])
		total += n
		if err != nil {
			if errors.Is(err, ErrTimeout) {
				continue
			}
			return err
		}
	}
	return nil
}

// ReadLine reads until a newline and returns the line without the trailing
// delimiter; carriage returns are stripped. When no newline arrives before
// the configured timeout the call fails with ErrTimeout and any partial data
// is discarded; no read state is kept between calls.
func (s *Serial) ReadLine() (string, error) {
	deadline := time.Now().Add(s.config.Timeout)
	var line []byte
	buf := make([]byte, 1)

	for {
		n, err := s.Read(buf)
		if err != nil {
			if errors.Is(err, ErrTimeout) {
				if time.Now().Before(deadline) {
					continue
				}
				return "", fmt.Errorf("%w: no newline within %v", ErrTimeout, s.config.Timeout)
			}
			return "", err
		}
		if n == 0 {
			continue
		}

		switch buf[0] {
		case '\n':
			return string(line), nil
		case '\r':
			// stripped
		default:
			line = append(line, buf[0])
		}

		if !time.Now().Before(deadline) {
			return "", fmt.Errorf("%w: no newline within %v", ErrTimeout, s.config.Timeout)
		}
	}
}

// Flush blocks until all buffered output has been transmitted. It performs a
// single attempt and does not reconnect a closed handle.
func (s *Serial) Flush() error {
	s.conn.mu.Lock()
	defer s.conn.mu.Unlock()

	if s.conn.tr == nil {
		return ErrNotConnected
	}
	return s.conn.tr.Drain()
}

// do runs one logical read or write through the bounded retry loop. Each
// attempt acquires the slot lock, reconnects an empty slot, runs op against
// the Transport and releases the lock before the inter-attempt pause.
func (s *Serial) do(op string, fn func(Transport) (int, error)) (int, error) {
	attempts := s.config.Retries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			time.Sleep(s.config.delayForAttempt(attempt - 1))
		}

		n, err := s.attempt(fn)
		if err == nil {
			return n, nil
		}
		lastErr = err

		s.logger.Warn("serial operation failed",
			zap.String("op", op),
			zap.String("device", s.device),
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
	}

	return 0, &IOError{Op: op, Attempts: attempts, Err: lastErr}
}

// attempt performs a single locked pass: reconnect if the slot is empty,
// then run the operation. A hard I/O error drops the Transport so the next
// attempt reopens the device; a bare timeout keeps the handle, since the
// device is healthy and there was simply no data.
func (s *Serial) attempt(fn func(Transport) (int, error)) (int, error) {
	s.conn.mu.Lock()
	defer s.conn.mu.Unlock()

	if s.conn.tr == nil {
		if err := s.conn.connectLocked(s.device, s.config); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrNotConnected, err)
		}
		s.logger.Debug("serial device reconnected", zap.String("device", s.device))
	}

	n, err := fn(s.conn.tr)
	if err != nil && !errors.Is(err, ErrTimeout) {
		s.conn.dropLocked()
	}
	return n, err
}
