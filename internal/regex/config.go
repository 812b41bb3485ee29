package regex

import "fmt"

// Config tunes the automata built by CompileConfig.
type Config struct {
	// MaxCachedTransitions bounds the memo of DFA transitions kept by a
	// compiled pattern. When the memo is full it is cleared and refilled.
	// Zero disables the memo: every step recomputes its closure.
	//
	// Default: 4096
	MaxCachedTransitions int

	// MaxExploredStates bounds Explore when no explicit limit is given.
	//
	// Default: 10,000
	MaxExploredStates int
}

func DefaultConfig() Config {
	return Config{
		MaxCachedTransitions: 4096,
		MaxExploredStates:    10_000,
	}
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	if c.MaxCachedTransitions < 0 {
		return fmt.Errorf("%w: MaxCachedTransitions must be >= 0, got %d", ErrInvalidConfig, c.MaxCachedTransitions)
	}
	if c.MaxExploredStates <= 0 {
		return fmt.Errorf("%w: MaxExploredStates must be > 0, got %d", ErrInvalidConfig, c.MaxExploredStates)
	}
	return nil
}
