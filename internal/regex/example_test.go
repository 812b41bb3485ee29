package regex_test

import (
	"errors"
	"fmt"
	"os"

	"dfamatch/internal/regex"
)

func ExampleCompile() {
	re, err := regex.Compile("(a|bb)*")
	if err != nil {
		panic(err)
	}
	for _, in := range []string{"", "abba", "ba"} {
		ok, _ := re.Matches(in)
		fmt.Printf("%q %v\n", in, ok)
	}
	// Output:
	// "" true
	// "abba" true
	// "ba" false
}

func ExampleSyntaxError() {
	_, err := regex.Compile("(ab")
	var se *regex.SyntaxError
	if errors.As(err, &se) {
		fmt.Println(se.Offset, se.Msg)
	}
	// Output:
	// 3 expected RightParen, found EOF
}

func ExampleDumpTokens() {
	_ = regex.DumpTokens(os.Stdout, `(a\|)*`)
	// Output:
	// Token(LeftParen, ()
	// Token(Char, 'a')
	// Token(Char, '|')
	// Token(RightParen, ))
	// Token(Star, *)
}
