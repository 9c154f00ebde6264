package core

import "fmt"

// Supported operand widths. Widths must be even so the extended operand
// splits into whole radix-4 windows, and at most 64 so the 2N-bit product
// fits two words.
const (
	MinWidth = 4
	MaxWidth = 64
)

// ConfigError indicates a multiplier configuration that must be rejected
// before any arithmetic is attempted.
type ConfigError struct {
	Msg string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid multiplier configuration: %s", e.Msg)
}

// Config holds the construction parameters of a multiplier instance. The
// signed/unsigned interpretation is a per-call flag, not configuration.
type Config struct {
	Width     int  // operand width in bits; product width is 2*Width
	Pipelined bool // register the carry-save pair ahead of the final adder
	Verbose   bool // trace the reduction schedule at construction
}

// DefaultConfig returns the 16-bit combinational configuration.
func DefaultConfig() Config {
	return Config{
		Width:     16,
		Pipelined: false,
		Verbose:   false,
	}
}

// Validate rejects malformed configurations: operand width below the
// 4-bit minimum, above the 64-bit maximum, or odd (which would leave a
// mismatched row count).
func (c Config) Validate() error {
	if c.Width < MinWidth {
		return ConfigError{Msg: fmt.Sprintf("width %d below minimum %d", c.Width, MinWidth)}
	}
	if c.Width > MaxWidth {
		return ConfigError{Msg: fmt.Sprintf("width %d above maximum %d", c.Width, MaxWidth)}
	}
	if c.Width%2 != 0 {
		return ConfigError{Msg: fmt.Sprintf("width %d is odd", c.Width)}
	}
	return nil
}
