package vibrex

import (
	"fmt"

	"github.com/CTrabant/vibrex/internal/compiler"
)

// Config controls the resource limits enforced during Compile. The limits
// exist to bound a single compile's cost and memory against adversarial or
// accidental pathological patterns; they are not a tuning knob for match
// performance.
type Config struct {
	// MaxPatternLen caps the raw pattern length in bytes.
	// Default: 65536
	MaxPatternLen int

	// MaxRecursion caps parser recursion depth, bounding how deeply groups
	// and quantifiers may nest.
	// Default: 1000
	MaxRecursion int

	// MaxAlternation caps the total number of '|' separators in the
	// pattern, counted across every alternation, top-level and nested.
	// Default: 1000
	MaxAlternation int

	// MaxStates caps the number of automaton states a single compile may
	// allocate.
	// Default: 100000
	MaxStates int
}

// DefaultConfig returns the limits used by Compile and MustCompile.
func DefaultConfig() Config {
	return Config{
		MaxPatternLen:  65536,
		MaxRecursion:   1000,
		MaxAlternation: 1000,
		MaxStates:      100000,
	}
}

// Validate reports whether c's fields fall within the ranges the compiler
// can honor.
//
// Valid ranges:
//   - MaxPatternLen: 1 to 10,000,000
//   - MaxRecursion: 10 to 100,000
//   - MaxAlternation: 2 to 1,000,000
//   - MaxStates: 64 to 100,000,000
func (c Config) Validate() error {
	if c.MaxPatternLen < 1 || c.MaxPatternLen > 10_000_000 {
		return &ConfigError{Field: "MaxPatternLen", Message: "must be between 1 and 10,000,000"}
	}
	if c.MaxRecursion < 10 || c.MaxRecursion > 100_000 {
		return &ConfigError{Field: "MaxRecursion", Message: "must be between 10 and 100,000"}
	}
	if c.MaxAlternation < 2 || c.MaxAlternation > 1_000_000 {
		return &ConfigError{Field: "MaxAlternation", Message: "must be between 2 and 1,000,000"}
	}
	if c.MaxStates < 64 || c.MaxStates > 100_000_000 {
		return &ConfigError{Field: "MaxStates", Message: "must be between 64 and 100,000,000"}
	}
	return nil
}

func (c Config) limits() compiler.Limits {
	return compiler.Limits{
		MaxPatternLen:  c.MaxPatternLen,
		MaxRecursion:   c.MaxRecursion,
		MaxAlternation: c.MaxAlternation,
		MaxStates:      c.MaxStates,
	}
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("vibrex: config field %s %s", e.Field, e.Message)
}
