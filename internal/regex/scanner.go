package regex

// Scanner splits a pattern into tokens, one per call to Next.
type Scanner struct {
	input string
	pos   int
}

func NewScanner(pattern string) *Scanner { return &Scanner{input: pattern} }

// Reset rewinds the scanner to the start of the pattern.
func (s *Scanner) Reset() { s.pos = 0 }

// Next returns the next token. Once the input is exhausted it keeps
// returning TokenEOF. A backslash with nothing after it is a SyntaxError.
func (s *Scanner) Next() (Token, error) {
	if s.pos >= len(s.input) {
		return Token{Kind: TokenEOF, Pos: len(s.input)}, nil
	}
	start := s.pos
	c := s.input[s.pos]
	s.pos++
	switch c {
	case '|':
		return Token{Kind: TokenUnion, Pos: start}, nil
	case '*':
		return Token{Kind: TokenStar, Pos: start}, nil
	case '(':
		return Token{Kind: TokenLeftParen, Pos: start}, nil
	case ')':
		return Token{Kind: TokenRightParen, Pos: start}, nil
	case '\\':
		if s.pos >= len(s.input) {
			return Token{}, &SyntaxError{Pattern: s.input, Offset: start, Msg: "trailing backslash"}
		}
		esc := s.input[s.pos]
		s.pos++
		return Token{Kind: TokenChar, Value: esc, Pos: start}, nil
	default:
		return Token{Kind: TokenChar, Value: c, Pos: start}, nil
	}
}

// Tokens drains a fresh scan of pattern, EOF included.
func Tokens(pattern string) ([]Token, error) {
	s := NewScanner(pattern)
	var out []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Kind == TokenEOF {
			return out, nil
		}
	}
}
