package regex

import "fmt"

// transitionKey is the (state, symbol) pair a transition table is keyed on.
type transitionKey struct {
	from StateID
	sym  Symbol
}

type transitionTable map[transitionKey]StateSet

// fragment is a partial automaton produced while walking the AST.
type fragment struct {
	start  StateID
	accept StateSet
	trans  transitionTable
}

func newFragment(start StateID, accept ...StateID) *fragment {
	return &fragment{start: start, accept: NewStateSet(accept...), trans: transitionTable{}}
}

func (f *fragment) addTransition(from StateID, sym Symbol, to StateID) {
	k := transitionKey{from, sym}
	targets, ok := f.trans[k]
	if !ok {
		targets = StateSet{}
		f.trans[k] = targets
	}
	targets.Add(to)
}

// merge returns a new fragment whose table is the union of f's and o's.
// Start and accept are left for the caller to set. o may be nil.
//
// Both fragments must come from the same Counter, so their keys are
// disjoint; a shared key means the counter was not shared and panics.
func (f *fragment) merge(o *fragment) *fragment {
	size := len(f.trans)
	if o != nil {
		size += len(o.trans)
	}
	out := &fragment{trans: make(transitionTable, size)}
	for k, v := range f.trans {
		out.trans[k] = v.Union(nil)
	}
	if o == nil {
		return out
	}
	for k, v := range o.trans {
		if _, dup := out.trans[k]; dup {
			panic(fmt.Sprintf("regex: state %d built twice (symbol %s)", k.from, k.sym))
		}
		out.trans[k] = v.Union(nil)
	}
	return out
}

// states lists every state the fragment mentions.
func (f *fragment) states() StateSet {
	all := NewStateSet(f.start)
	for id := range f.accept {
		all.Add(id)
	}
	for k, targets := range f.trans {
		all.Add(k.from)
		for id := range targets {
			all.Add(id)
		}
	}
	return all
}
