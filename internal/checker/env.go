package checker

import (
	"fmt"

	"dfamatch/internal/regex"
)

// Environment holds the patterns bound with let

type Environment struct {
	patterns map[string]*regex.Regex
}

func NewEnvironment() *Environment {
	return &Environment{patterns: make(map[string]*regex.Regex)}
}

func (e *Environment) Get(name string) (*regex.Regex, bool) {
	re, ok := e.patterns[name]
	return re, ok
}

func (e *Environment) Set(name string, re *regex.Regex) {
	e.patterns[name] = re
}

func (e *Environment) String() string {
	return fmt.Sprint(e.patterns)
}
