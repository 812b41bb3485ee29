package regex

import (
	"fmt"
	"sync"
)

// DFA is the subset-construction view of an NFA. Its states are sets of
// NFA states and are computed on demand, one transition at a time.
//
// A DFA is safe for concurrent use. The StateSets it returns are shared
// and must be treated as read-only.
type DFA struct {
	nfa   *NFA
	start StateSet
	cfg   Config

	mu     sync.RWMutex
	memo   map[memoKey]StateSet
	clears int
}

type memoKey struct {
	set string
	b   byte
}

func newDFA(n *NFA, cfg Config) *DFA {
	d := &DFA{
		nfa:   n,
		start: n.EpsilonClosure(NewStateSet(n.Start())),
		cfg:   cfg,
	}
	if cfg.MaxCachedTransitions > 0 {
		d.memo = make(map[memoKey]StateSet)
	}
	return d
}

// Start is the epsilon-closure of the NFA start state.
func (d *DFA) Start() StateSet { return d.start }

// IsAccept reports whether set contains an NFA accept state.
func (d *DFA) IsAccept(set StateSet) bool { return set.Intersects(d.nfa.accept) }

// Transition returns the DFA state reached from set on b: the closure of
// every NFA b-transition out of set. The empty set is the dead state.
func (d *DFA) Transition(set StateSet, b byte) StateSet {
	if d.memo == nil {
		return d.step(set, b)
	}
	k := memoKey{set.Key(), b}
	d.mu.RLock()
	next, ok := d.memo[k]
	d.mu.RUnlock()
	if ok {
		return next
	}
	next = d.step(set, b)
	d.mu.Lock()
	if len(d.memo) >= d.cfg.MaxCachedTransitions {
		clear(d.memo)
		d.clears++
	}
	d.memo[k] = next
	d.mu.Unlock()
	return next
}

func (d *DFA) step(set StateSet, b byte) StateSet {
	return d.nfa.EpsilonClosure(d.nfa.move(set, b))
}

// CacheStats reports the number of memoised transitions and how many times
// the memo has been cleared.
func (d *DFA) CacheStats() (entries, clears int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.memo), d.clears
}

// Recognizer returns a fresh cursor positioned at the start state.
func (d *DFA) Recognizer() *Recognizer {
	return &Recognizer{dfa: d, current: d.start}
}

// Recognizer walks a DFA one byte at a time. It is single-use and must not
// be shared between goroutines.
type Recognizer struct {
	dfa     *DFA
	current StateSet
}

// Consume advances the cursor by one input byte.
func (r *Recognizer) Consume(b byte) {
	r.current = r.dfa.Transition(r.current, b)
}

func (r *Recognizer) Current() StateSet { return r.current }

// Accepting reports whether the cursor is on an accepting state.
func (r *Recognizer) Accepting() bool { return r.dfa.IsAccept(r.current) }

// Accepts consumes all of input and then reports whether the final state
// accepts. Only the whole input is ever tested.
func (r *Recognizer) Accepts(input string) bool {
	for i := 0; i < len(input); i++ {
		r.Consume(input[i])
	}
	return r.Accepting()
}

// Table is an explicit DFA: rows are numbered states, a missing entry in
// Next leads to the dead state.
type Table struct {
	Start  int
	Accept []bool
	Next   []map[byte]int
	Sets   []StateSet // NFA states behind each row; nil for minimised tables
	Alpha  []byte
}

func (t *Table) NumStates() int { return len(t.Accept) }

// Accepts runs input through the table.
func (t *Table) Accepts(input string) bool {
	s := t.Start
	for i := 0; i < len(input); i++ {
		next, ok := t.Next[s][input[i]]
		if !ok {
			return false
		}
		s = next
	}
	return t.Accept[s]
}

// Explore runs the subset construction eagerly from the start state over
// the NFA alphabet and numbers every reachable non-dead state. It fails
// with ErrTooManyStates once more than limit states are found; limit <= 0
// uses the configured MaxExploredStates.
func (d *DFA) Explore(limit int) (*Table, error) {
	if limit <= 0 {
		limit = d.cfg.MaxExploredStates
	}
	alpha := d.nfa.Alphabet()
	t := &Table{Alpha: alpha}
	index := map[string]int{}

	add := func(set StateSet) (int, error) {
		k := set.Key()
		if id, ok := index[k]; ok {
			return id, nil
		}
		if len(t.Accept) >= limit {
			return 0, fmt.Errorf("%w: more than %d", ErrTooManyStates, limit)
		}
		id := len(t.Accept)
		index[k] = id
		t.Accept = append(t.Accept, d.IsAccept(set))
		t.Next = append(t.Next, map[byte]int{})
		t.Sets = append(t.Sets, set)
		return id, nil
	}

	if _, err := add(d.start); err != nil {
		return nil, err
	}
	for cur := 0; cur < len(t.Sets); cur++ {
		for _, b := range alpha {
			next := d.Transition(t.Sets[cur], b)
			if len(next) == 0 {
				continue
			}
			id, err := add(next)
			if err != nil {
				return nil, err
			}
			t.Next[cur][b] = id
		}
	}
	return t, nil
}
