package checker

import (
	"fmt"
	"io"
)

// Report writes every failed expectation followed by a summary line.
func (t *Tally) Report(w io.Writer) {
	for _, r := range t.Failures {
		fmt.Fprintf(w, "FAIL %s\n", r)
	}
	status := "ok"
	if t.Failed > 0 {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s %d passed, %d failed\n", status, t.Passed, t.Failed)
}
