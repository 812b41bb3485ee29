package regex

import (
	"sort"
	"strconv"
	"strings"
)

// StateID names an NFA state. IDs are only meaningful within the compile
// that issued them.
type StateID int

// Counter hands out state IDs for a single compilation. Each compile owns
// its own Counter so fragments built from different subtrees never share
// an ID.
type Counter struct {
	next StateID
}

func NewCounter() *Counter { return &Counter{} }

// NewState returns an ID never returned before by this counter.
func (c *Counter) NewState() StateID {
	id := c.next
	c.next++
	return id
}

// Issued reports how many IDs the counter has handed out.
func (c *Counter) Issued() int { return int(c.next) }

// Symbol is an input byte or Epsilon.
type Symbol int16

// Epsilon labels a transition that consumes no input.
const Epsilon Symbol = -1

func Byte(b byte) Symbol { return Symbol(b) }

// IsEpsilon reports whether s is the empty symbol.
func (s Symbol) IsEpsilon() bool { return s == Epsilon }

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return strconv.QuoteRuneToASCII(rune(s))
}

// StateSet is a set of NFA states. A DFA state is one of these.
type StateSet map[StateID]struct{}

func NewStateSet(ids ...StateID) StateSet {
	s := make(StateSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s StateSet) Add(id StateID) { s[id] = struct{}{} }

func (s StateSet) Has(id StateID) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set holding the members of s and o.
func (s StateSet) Union(o StateSet) StateSet {
	out := make(StateSet, len(s)+len(o))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range o {
		out[id] = struct{}{}
	}
	return out
}

// Intersects reports whether s and o share a member.
func (s StateSet) Intersects(o StateSet) bool {
	if len(o) < len(s) {
		s, o = o, s
	}
	for id := range s {
		if o.Has(id) {
			return true
		}
	}
	return false
}

// Sorted returns the members in ascending order.
func (s StateSet) Sorted() []StateID {
	ids := make([]StateID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Key is a canonical string form of the set, usable as a map key.
func (s StateSet) Key() string {
	var b strings.Builder
	for i, id := range s.Sorted() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}

func (s StateSet) String() string { return "{" + s.Key() + "}" }
