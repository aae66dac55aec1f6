package bitcore

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// Parity represents the parity mode
type Parity int

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

// Config holds the configuration for a serial connection
type Config struct {
	BaudRate     int
	Timeout      time.Duration // per-operation read/write timeout
	Retries      int           // extra attempts after the first (0 = single attempt)
	RetryDelay   time.Duration // pause between attempts
	RetryBackoff float64       // multiplier applied to RetryDelay per attempt (1.0 = flat)
	DataBits     int
	StopBits     int
	Parity       Parity

	logger *zap.Logger
	opener Opener
}

// Option is a functional option for configuring a serial connection
type Option func(*Config) error

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaudRate:     9600,
		Timeout:      time.Second,
		Retries:      3,
		RetryDelay:   10 * time.Millisecond,
		RetryBackoff: 1.0,
		DataBits:     8,
		StopBits:     1,
		Parity:       ParityNone,
	}
}

// WithBaudRate sets the baud rate
func WithBaudRate(rate int) Option {
	return func(c *Config) error {
		if rate <= 0 {
			return ErrInvalidBaudRate
		}
		c.BaudRate = rate
		return nil
	}
}

// WithTimeout sets the per-operation timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout < 0 {
			return ErrInvalidConfig
		}
		c.Timeout = timeout
		return nil
	}
}

// WithRetries sets the number of retry attempts after the first failure
func WithRetries(retries int) Option {
	return func(c *Config) error {
		if retries < 0 {
			return ErrInvalidConfig
		}
		c.Retries = retries
		return nil
	}
}

// WithRetryDelay sets the pause between retry attempts
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Config) error {
		if delay < 0 {
			return ErrInvalidConfig
		}
		c.RetryDelay = delay
		return nil
	}
}

// WithRetryBackoff sets the exponential backoff multiplier for retry delays
func WithRetryBackoff(multiplier float64) Option {
	return func(c *Config) error {
		if multiplier < 1.0 {
			return ErrInvalidConfig
		}
		c.RetryBackoff = multiplier
		return nil
	}
}

// WithDataBits sets the number of data bits (5, 6, 7, or 8)
func WithDataBits(bits int) Option {
	return func(c *Config) error {
		if bits < 5 || bits > 8 {
			return ErrInvalidConfig
		}
		c.DataBits = bits
		return nil
	}
}

// WithStopBits sets the number of stop bits (1 or 2)
func WithStopBits(bits int) Option {
	return func(c *Config) error {
		if bits != 1 && bits != 2 {
			return ErrInvalidConfig
		}
		c.StopBits = bits
		return nil
	}
}

// WithParity sets the parity mode
func WithParity(parity Parity) Option {
	return func(c *Config) error {
		c.Parity = parity
		return nil
	}
}

// WithLogger sets the logger used for connection and retry diagnostics.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return ErrInvalidConfig
		}
		c.logger = logger
		return nil
	}
}

// WithTransport replaces the default serial transport opener. Mostly useful
// for testing against mock or in-memory transports.
func WithTransport(opener Opener) Option {
	return func(c *Config) error {
		if opener == nil {
			return ErrInvalidConfig
		}
		c.opener = opener
		return nil
	}
}

// validate checks the invariants that must hold before opening a device
func (c Config) validate() error {
	if c.BaudRate <= 0 {
		return ErrInvalidBaudRate
	}
	if c.Timeout < 0 || c.Retries < 0 || c.RetryDelay < 0 || c.RetryBackoff < 1.0 {
		return ErrInvalidConfig
	}
	return nil
}

// delayForAttempt returns the pause before retry number attempt (0-based)
func (c Config) delayForAttempt(attempt int) time.Duration {
	if c.RetryBackoff == 1.0 {
		return c.RetryDelay
	}
	scaled := float64(c.RetryDelay) * math.Pow(c.RetryBackoff, float64(attempt))
	return time.Duration(scaled)
}
