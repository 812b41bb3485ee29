package checker

import (
	"os"

	"dfamatch/internal/regex"
)

// LoadScript reads and parses a check script from disk.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

// Run parses and executes a script, returning the tally of results. An
// error means the script itself is broken (bad syntax, undefined name,
// a let that does not compile), not that an expectation failed.
func Run(name, data string, cfg regex.Config) (*Tally, error) {
	script, err := Parse(name, data)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(cfg)
	if err := script.Exec(ctx); err != nil {
		return ctx.Tally, err
	}
	return ctx.Tally, nil
}
