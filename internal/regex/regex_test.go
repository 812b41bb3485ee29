package regex

import (
	"errors"
	"strings"
	"testing"
)

// ------------------------------------------------------------------- helpers

func newRE(t *testing.T, pat string) *Regex {
	t.Helper()
	re, err := Compile(pat)
	if err != nil {
		t.Fatalf("compile %q: %v", pat, err)
	}
	return re
}

func acc(t *testing.T, re *Regex, in string, want bool) {
	t.Helper()
	got, err := re.Matches(in)
	if err != nil {
		t.Fatalf("pattern %q on %q: %v", re, in, err)
	}
	if got != want {
		t.Fatalf("pattern %q on %q want %v got %v", re, in, want, got)
	}
}

// ------------------------------------------------------------------- matching

func TestMatchTable(t *testing.T) {
	tests := []struct {
		pat    string
		accept []string
		reject []string
	}{
		{"ab", []string{"ab"}, []string{"a", "b", "abc", ""}},
		{"a*", []string{"", "a", "aaaa"}, []string{"ab", "b"}},
		{"a|b", []string{"a", "b"}, []string{"ab", "", "c"}},
		{"(a|bb)*", []string{"", "a", "bba", "abba"}, []string{"b", "ba"}},
		{`\*`, []string{"*"}, []string{"", "**", `\*`, "a"}},
		{"aa(b|cc)*a", []string{"aaa", "aaba", "aacca", "aabba", "aabbccbbbccbcca"}, []string{"aa", "aabaa", "aaccca", "aabbac", "bbccbbbccbcca"}},
		{"(B|cc|GG)*A", []string{"BA", "A", "ccGGA", "BBBA", "BBGGBBccA", "ccccccGGBGGA"}, []string{"B", "", "AA", "cccA", "AB", "BcA", "BB", "BBBBBBB", "F"}},
		{`a\|b`, []string{"a|b"}, []string{"a", "b"}},
		{`\(\)`, []string{"()"}, []string{""}},
		{`\\`, []string{`\`}, []string{""}},
		{"a b", []string{"a b"}, []string{"ab"}},
	}
	for _, tt := range tests {
		re := newRE(t, tt.pat)
		for _, in := range tt.accept {
			acc(t, re, in, true)
		}
		for _, in := range tt.reject {
			acc(t, re, in, false)
		}
	}
}

func TestGroupingEquivalence(t *testing.T) {
	a := newRE(t, "(ab)c")
	b := newRE(t, "a(bc)")
	c := newRE(t, "abc")
	for _, w := range words("abc", 4) {
		x, _ := a.Matches(w)
		y, _ := b.Matches(w)
		z, _ := c.Matches(w)
		if x != y || y != z {
			t.Fatalf("%q: (ab)c=%v a(bc)=%v abc=%v", w, x, y, z)
		}
	}
}

func TestCompileTwiceSameLanguage(t *testing.T) {
	for _, pat := range []string{"(a|bb)*", "a*b|c", "((a|b)c)*"} {
		first := newRE(t, pat)
		second := newRE(t, pat)
		for _, w := range words("abc", 5) {
			x, _ := first.Matches(w)
			y, _ := second.Matches(w)
			if x != y {
				t.Fatalf("%q on %q: first %v second %v", pat, w, x, y)
			}
		}
	}
}

// The empty sequence compiles to a zero-width state rather than to a NUL
// literal: an empty pattern or group matches "" and never "\x00".
func TestEmptySequenceIsZeroWidth(t *testing.T) {
	empty := newRE(t, "")
	acc(t, empty, "", true)
	acc(t, empty, "\x00", false)
	acc(t, empty, "a", false)

	group := newRE(t, "a()b")
	acc(t, group, "ab", true)
	acc(t, group, "a\x00b", false)

	alt := newRE(t, "()|a")
	acc(t, alt, "", true)
	acc(t, alt, "a", true)
	acc(t, alt, "\x00", false)

	starred := newRE(t, "()*")
	acc(t, starred, "", true)
	acc(t, starred, "\x00", false)
}

func TestNULIsAnOrdinaryByte(t *testing.T) {
	re := newRE(t, "a\x00*")
	acc(t, re, "a", true)
	acc(t, re, "a\x00\x00", true)
	acc(t, re, "a\x01", false)
}

// ------------------------------------------------------------------- errors

func TestSyntaxErrors(t *testing.T) {
	for _, pat := range []string{"(ab", "a|", "*a", "(asd", "a)", `ab\`, "a|()|"} {
		_, err := Compile(pat)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: want syntax error, got %v", pat, err)
		}
		var se *SyntaxError
		if errors.As(err, &se) && se.Pattern != pat {
			t.Errorf("%q: error names pattern %q", pat, se.Pattern)
		}
	}
}

func TestEncodingErrors(t *testing.T) {
	_, err := Compile("ab¥")
	var ee *EncodingError
	if !errors.As(err, &ee) {
		t.Fatalf("want *EncodingError, got %v", err)
	}
	if ee.What != "pattern" || ee.Offset != 2 || ee.Byte != 0xc2 {
		t.Fatalf("unexpected %+v", ee)
	}

	// encoding is checked before the grammar
	if _, err := Compile("(\xff"); !errors.Is(err, ErrEncoding) {
		t.Fatalf("want encoding error first, got %v", err)
	}

	re := newRE(t, "asd")
	ok, err := re.Matches("¥")
	if !errors.Is(err, ErrEncoding) || ok {
		t.Fatalf("want encoding error on input, got %v %v", ok, err)
	}
	if !errors.As(err, &ee) || ee.What != "input" {
		t.Fatalf("want input EncodingError, got %v", err)
	}

	// an escape cannot smuggle a high byte in
	if _, err := Compile("\\\x80"); !errors.Is(err, ErrEncoding) {
		t.Fatalf("escaped high byte: got %v", err)
	}
}

func TestCompileConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCachedTransitions = -1
	if _, err := CompileConfig("a", cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("want ErrInvalidConfig, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.MaxExploredStates = 0
	if _, err := CompileConfig("a", cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("want ErrInvalidConfig, got %v", err)
	}
}

func TestMatchHelper(t *testing.T) {
	ok, err := Match("a*b", "aaab")
	if err != nil || !ok {
		t.Fatalf("Match: %v %v", ok, err)
	}
	if _, err := Match("(", "x"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("Match on bad pattern: %v", err)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompile must panic on a bad pattern")
		}
	}()
	MustCompile("a|")
}

func TestAllLowercaseLetters(t *testing.T) {
	letters := "abcdefghijklmnopqrstuvwxyz"
	re := newRE(t, "("+strings.Join(strings.Split(letters, ""), "|")+")*")
	acc(t, re, "", true)
	acc(t, re, letters, true)
	acc(t, re, "helloworld", true)
	acc(t, re, "hello world", false)
	acc(t, re, "Hello", false)
}

// ------------------------------------------------------------------- bench

func BenchmarkMillionAs(b *testing.B) {
	re := MustCompile("(a|b)*a")
	txt := strings.Repeat("a", 1_000_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = re.Matches(txt)
	}
}
