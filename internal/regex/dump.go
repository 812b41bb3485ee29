package regex

import (
	"bufio"
	"fmt"
	"io"
)

// DumpTokens writes one line per token of pattern, EOF excluded. Tokens
// scanned before a scanner error are still written.
func DumpTokens(w io.Writer, pattern string) error {
	toks, scanErr := Tokens(pattern)
	bw := bufio.NewWriter(w)
	for _, tok := range toks {
		if tok.Kind == TokenEOF {
			break
		}
		fmt.Fprintln(bw, tok)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return scanErr
}
