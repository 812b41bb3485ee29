package regex

import (
	"errors"
	"testing"
)

func TestScannerTokens(t *testing.T) {
	s := NewScanner(`a\*|()*\\b`)
	want := []Token{
		{Kind: TokenChar, Value: 'a', Pos: 0},
		{Kind: TokenChar, Value: '*', Pos: 1},
		{Kind: TokenUnion, Pos: 3},
		{Kind: TokenLeftParen, Pos: 4},
		{Kind: TokenRightParen, Pos: 5},
		{Kind: TokenStar, Pos: 6},
		{Kind: TokenChar, Value: '\\', Pos: 7},
		{Kind: TokenChar, Value: 'b', Pos: 9},
		{Kind: TokenEOF, Pos: 10},
	}
	for i, w := range want {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("tok %d: %v", i, err)
		}
		if tok != w {
			t.Fatalf("tok %d want %v got %v", i, w, tok)
		}
	}
	// EOF is sticky
	if tok, _ := s.Next(); tok.Kind != TokenEOF {
		t.Fatalf("want EOF after end, got %v", tok)
	}
}

func TestScannerEscapesOperators(t *testing.T) {
	for _, c := range []byte{'|', '*', '(', ')', '\\', 'n'} {
		toks, err := Tokens(string([]byte{'\\', c}))
		if err != nil {
			t.Fatalf("escape %q: %v", c, err)
		}
		if len(toks) != 2 || toks[0].Kind != TokenChar || toks[0].Value != c {
			t.Fatalf("escape %q: got %v", c, toks)
		}
	}
}

func TestScannerTrailingBackslash(t *testing.T) {
	s := NewScanner(`ab\`)
	for i := 0; i < 2; i++ {
		if _, err := s.Next(); err != nil {
			t.Fatalf("tok %d: %v", i, err)
		}
	}
	_, err := s.Next()
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("want *SyntaxError, got %v", err)
	}
	if se.Offset != 2 {
		t.Fatalf("want offset 2, got %d", se.Offset)
	}
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("want ErrSyntax in chain")
	}
}

func TestScannerReset(t *testing.T) {
	s := NewScanner("ab")
	first, _ := s.Next()
	s.Next()
	s.Reset()
	again, _ := s.Next()
	if first != again {
		t.Fatalf("reset: want %v got %v", first, again)
	}
}

func TestScannerEmpty(t *testing.T) {
	toks, err := Tokens("")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Kind != TokenEOF {
		t.Fatalf("want single EOF, got %v", toks)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: TokenChar, Value: 'a'}, "Token(Char, 'a')"},
		{Token{Kind: TokenStar}, "Token(Star, *)"},
		{Token{Kind: TokenUnion}, "Token(Union, |)"},
		{Token{Kind: TokenLeftParen}, "Token(LeftParen, ()"},
		{Token{Kind: TokenEOF}, "Token(EOF)"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
