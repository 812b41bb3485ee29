// Package regex compiles a small ASCII pattern language (literals,
// concatenation, '|', '*', parentheses and backslash escapes) into a
// Thompson NFA, determinises it lazily by subset construction and uses the
// resulting DFA to decide whole-string membership in linear time.
package regex

// Regex is a compiled pattern. It is safe for concurrent use by multiple
// goroutines; every call to Matches runs its own Recognizer.
type Regex struct {
	pattern string
	nfa     *NFA
	dfa     *DFA
}

// Compile parses pattern with the default configuration.
func Compile(pattern string) (*Regex, error) {
	return CompileConfig(pattern, DefaultConfig())
}

// CompileConfig parses pattern and builds its automata. A non-ASCII byte
// yields an *EncodingError before any parsing; a malformed pattern yields a
// *SyntaxError.
func CompileConfig(pattern string, cfg Config) (*Regex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkASCII("pattern", pattern); err != nil {
		return nil, err
	}
	nfa, err := NewParser(pattern).Expr()
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, nfa: nfa, dfa: nfa.ToDFA(cfg)}, nil
}

func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Matches reports whether the whole of input belongs to the pattern's
// language. A non-ASCII byte in input yields an *EncodingError.
func (r *Regex) Matches(input string) (bool, error) {
	if err := checkASCII("input", input); err != nil {
		return false, err
	}
	return r.dfa.Recognizer().Accepts(input), nil
}

// Match compiles pattern and tests input against it.
func Match(pattern, input string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Matches(input)
}

func (r *Regex) String() string { return r.pattern }
func (r *Regex) NFA() *NFA      { return r.nfa }
func (r *Regex) DFA() *DFA      { return r.dfa }
