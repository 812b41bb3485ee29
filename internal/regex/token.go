package regex

import "fmt"

type TokenKind int

const (
	TokenEOF        TokenKind = iota
	TokenChar                 // literal byte
	TokenUnion                // |
	TokenStar                 // *
	TokenLeftParen            // (
	TokenRightParen           // )
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenChar:
		return "Char"
	case TokenUnion:
		return "Union"
	case TokenStar:
		return "Star"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one lexeme of a pattern. Value is only meaningful for TokenChar;
// Pos is the byte offset where the token starts.
type Token struct {
	Kind  TokenKind
	Value byte
	Pos   int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenChar:
		return fmt.Sprintf("Token(%s, %q)", t.Kind, rune(t.Value))
	case TokenEOF:
		return "Token(EOF)"
	default:
		return fmt.Sprintf("Token(%s, %c)", t.Kind, operatorByte(t.Kind))
	}
}

func operatorByte(k TokenKind) byte {
	switch k {
	case TokenUnion:
		return '|'
	case TokenStar:
		return '*'
	case TokenLeftParen:
		return '('
	case TokenRightParen:
		return ')'
	}
	return 0
}
