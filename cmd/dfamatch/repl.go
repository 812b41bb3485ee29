package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"dfamatch/internal/regex"
)

// repl reads one candidate per line and prints ACCEPT or REJECT. Two
// consecutive empty lines, or the end of input, stop it.
func repl(r io.Reader, w io.Writer, re *regex.Regex) error {
	in := bufio.NewScanner(r)
	empty := 0
	for {
		fmt.Fprintf(w, "\nGive a string (two consecutive empty strings will exit)\nPattern is: %s\n", re)
		if !in.Scan() {
			return in.Err()
		}
		line := strings.TrimSuffix(in.Text(), "\r")
		if line == "" {
			empty++
		} else {
			empty = 0
		}
		if empty >= 2 {
			return nil
		}

		ok, err := re.Matches(line)
		switch {
		case err != nil:
			fmt.Fprintln(w, err)
		case ok:
			fmt.Fprintln(w, "ACCEPT")
		default:
			fmt.Fprintln(w, "REJECT")
		}
	}
}
