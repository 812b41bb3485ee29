package checker

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"dfamatch/internal/regex"
)

// Script is a list of pattern expectations, for example:
//
//	let even = "(aa)*";
//	expect even accepts "", "aa";
//	expect even rejects "a";
//	expect "a|b" accepts "b";
//	invalid "(ab";
type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Let     *Let     `parser:"  @@ ';'"`
	Expect  *Expect  `parser:"| @@ ';'"`
	Invalid *Invalid `parser:"| @@ ';'"`
}

type Let struct {
	Pos     lexer.Position
	Name    string `parser:"'let' @Ident"`
	Pattern string `parser:"'=' @String"`
}

type Expect struct {
	Pos     lexer.Position
	Subject *Subject `parser:"'expect' @@"`
	Verdict string   `parser:"@('accepts' | 'rejects')"`
	Inputs  []string `parser:"@String (',' @String)*"`
}

type Subject struct {
	Name    *string `parser:"  @Ident"`
	Pattern *string `parser:"| @String"`
}

type Invalid struct {
	Pos     lexer.Position
	Pattern string `parser:"'invalid' @String"`
}

var parser = participle.MustBuild[Script](participle.Unquote("String"))

// Parse reads a script; name is used in error positions.
func Parse(name, data string) (*Script, error) {
	return parser.ParseString(name, data)
}

func (s *Script) Exec(ctx *Context) error {
	for _, stmt := range s.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	switch {
	case s.Let != nil:
		re, err := regex.CompileConfig(s.Let.Pattern, ctx.Config)
		if err != nil {
			return fmt.Errorf("%s: let %s: %w", s.Let.Pos, s.Let.Name, err)
		}
		ctx.Env.Set(s.Let.Name, re)
	case s.Expect != nil:
		re, err := s.Expect.Subject.Resolve(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Expect.Pos, err)
		}
		want := s.Expect.Verdict == "accepts"
		for _, in := range s.Expect.Inputs {
			got, err := re.Matches(in)
			ctx.Tally.Record(Result{
				Pos:     s.Expect.Pos,
				Pattern: re.String(),
				Input:   in,
				Want:    want,
				Got:     got,
				Err:     err,
			})
		}
	case s.Invalid != nil:
		_, err := regex.CompileConfig(s.Invalid.Pattern, ctx.Config)
		ctx.Tally.Record(Result{
			Pos:     s.Invalid.Pos,
			Pattern: s.Invalid.Pattern,
			Invalid: true,
			Err:     err,
		})
	}
	return nil
}

// Resolve returns the named pattern, or compiles the literal one.
func (s *Subject) Resolve(ctx *Context) (*regex.Regex, error) {
	switch {
	case s.Name != nil:
		re, ok := ctx.Env.Get(*s.Name)
		if !ok {
			return nil, fmt.Errorf("undefined pattern %s", *s.Name)
		}
		return re, nil
	case s.Pattern != nil:
		return regex.CompileConfig(*s.Pattern, ctx.Config)
	}
	return nil, fmt.Errorf("invalid subject")
}
