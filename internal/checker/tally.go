package checker

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Result is the outcome of one expectation.
type Result struct {
	Pos     lexer.Position
	Pattern string
	Input   string
	Want    bool
	Got     bool
	Invalid bool  // the pattern was expected not to compile
	Err     error // compile error for Invalid, match error otherwise
}

func (r Result) Passed() bool {
	if r.Invalid {
		return r.Err != nil
	}
	return r.Err == nil && r.Got == r.Want
}

func (r Result) String() string {
	switch {
	case r.Invalid && r.Err == nil:
		return fmt.Sprintf("%s: %q compiled, want a compile error", r.Pos, r.Pattern)
	case r.Invalid:
		return fmt.Sprintf("%s: %q rejected: %v", r.Pos, r.Pattern, r.Err)
	case r.Err != nil:
		return fmt.Sprintf("%s: %q on %q: %v", r.Pos, r.Pattern, r.Input, r.Err)
	default:
		return fmt.Sprintf("%s: %q on %q: got %s, want %s", r.Pos, r.Pattern, r.Input, verdict(r.Got), verdict(r.Want))
	}
}

func verdict(accept bool) string {
	if accept {
		return "ACCEPT"
	}
	return "REJECT"
}

// Tally counts passed and failed expectations

type Tally struct {
	Passed, Failed int
	Failures       []Result
}

func NewTally() *Tally {
	return &Tally{}
}

func (t *Tally) Record(r Result) {
	if r.Passed() {
		t.Passed++
		return
	}
	t.Failed++
	t.Failures = append(t.Failures, r)
}

func (t *Tally) Counts() (int, int) {
	return t.Passed, t.Failed
}

func (t *Tally) String() string {
	return fmt.Sprintf("(passed=%d, failed=%d)", t.Passed, t.Failed)
}
