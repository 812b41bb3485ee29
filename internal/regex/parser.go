package regex

import "fmt"

// Parser is a recursive-descent parser over the token stream of one
// pattern. Grammar:
//
//	expr    -> subexpr EOF
//	subexpr -> seq ('|' subexpr)?
//	seq     -> subseq | ε
//	subseq  -> star subseq*
//	star    -> factor '*'?
//	factor  -> '(' subexpr ')' | CHAR
//
// Union and concatenation nest to the right. Both sides of '|' must start
// with a factor; the empty sequence is only allowed as a whole pattern or
// as the body of a group.
type Parser struct {
	scan    *Scanner
	pattern string
	look    Token
	err     error // scanner error for look, reported on first use
}

func NewParser(pattern string) *Parser {
	p := &Parser{scan: NewScanner(pattern), pattern: pattern}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.look, p.err = p.scan.Next()
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Pattern: p.pattern, Offset: p.look.Pos, Msg: fmt.Sprintf(format, args...)}
}

// peek returns the lookahead token, or the scanner error that replaced it.
func (p *Parser) peek() (Token, error) {
	return p.look, p.err
}

// eat consumes the lookahead if it has the expected kind.
func (p *Parser) eat(kind TokenKind) error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		return p.errorf("expected %s, found %s", kind, tok.Kind)
	}
	p.advance()
	return nil
}

// Expr parses the whole pattern, requires EOF after it and compiles the
// tree with Thompson's construction.
func (p *Parser) Expr() (*NFA, error) {
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	c := NewCounter()
	return root.toFragment(c).toNFA(c), nil
}

func (p *Parser) parse() (*astNode, error) {
	node, err := p.subexpr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(TokenEOF); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) subexpr() (*astNode, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	leftEmpty := !startsFactor(tok.Kind)
	left, err := p.seq()
	if err != nil {
		return nil, err
	}
	if tok, err = p.peek(); err != nil {
		return nil, err
	}
	if tok.Kind != TokenUnion {
		return left, nil
	}
	if leftEmpty {
		return nil, p.errorf("missing left operand of |")
	}
	if err := p.eat(TokenUnion); err != nil {
		return nil, err
	}
	if tok, err = p.peek(); err != nil {
		return nil, err
	}
	if !startsFactor(tok.Kind) {
		return nil, p.errorf("missing right operand of |")
	}
	right, err := p.subexpr()
	if err != nil {
		return nil, err
	}
	return unionNode(left, right), nil
}

// startsFactor reports whether k can begin a factor.
func startsFactor(k TokenKind) bool {
	return k == TokenChar || k == TokenLeftParen
}

func (p *Parser) seq() (*astNode, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !startsFactor(tok.Kind) {
		return emptyNode(), nil
	}
	return p.subseq()
}

func (p *Parser) subseq() (*astNode, error) {
	node, err := p.star()
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !startsFactor(tok.Kind) {
		return node, nil
	}
	rest, err := p.subseq()
	if err != nil {
		return nil, err
	}
	return concatNode(node, rest), nil
}

func (p *Parser) star() (*astNode, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenStar {
		return node, nil
	}
	if err := p.eat(TokenStar); err != nil {
		return nil, err
	}
	return starNode(node), nil
}

func (p *Parser) factor() (*astNode, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenLeftParen {
		if err := p.eat(TokenLeftParen); err != nil {
			return nil, err
		}
		node, err := p.subexpr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(TokenRightParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	node := charNode(tok.Value)
	if err := p.eat(TokenChar); err != nil {
		return nil, err
	}
	return node, nil
}
