package kernel

import (
	"os"
	"strings"
)

// Strategy identifies a popcount implementation.
type Strategy uint8

const (
	// Hardware uses math/bits, which the compiler lowers to POPCNT/CNT.
	Hardware Strategy = iota
	// Table uses a 256-entry byte lookup table.
	Table
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case Hardware:
		return "hardware"
	case Table:
		return "table"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a string into a Strategy value.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hardware":
		return Hardware, true
	case "table":
		return Table, true
	default:
		return Hardware, false
	}
}

// overrideEnv names the environment variable that forces a strategy.
const overrideEnv = "DYNBITSET_POPCOUNT"

// Package-level state, written once by the platform init functions.
var (
	activeStrategy Strategy
	hasOverride    bool

	// hasPopcount is true when the CPU has a population count instruction.
	hasPopcount bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(overrideEnv); override != "" {
		if s, ok := ParseStrategy(override); ok {
			hasOverride = true
			activeStrategy = s
			return
		}
	}

	if hasPopcount {
		activeStrategy = Hardware
		return
	}
	activeStrategy = Table
}

// ActiveStrategy returns the popcount strategy in use.
func ActiveStrategy() Strategy {
	return activeStrategy
}

// IsOverridden returns true if DYNBITSET_POPCOUNT selected the strategy.
func IsOverridden() bool {
	return hasOverride
}

// HasPopcount returns true if the CPU reports a population count instruction.
func HasPopcount() bool {
	return hasPopcount
}

// SetStrategy forces a strategy and returns the previous one.
// It is not safe to call concurrently with kernels and exists for tests
// and benchmarks.
func SetStrategy(s Strategy) Strategy {
	prev := activeStrategy
	activeStrategy = s
	return prev
}
