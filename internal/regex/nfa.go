package regex

// NFA is a finished Thompson automaton. It is never modified after
// construction and may be shared between goroutines.
type NFA struct {
	start  StateID
	accept StateSet
	trans  transitionTable
	states int
}

func (f *fragment) toNFA(c *Counter) *NFA {
	return &NFA{start: f.start, accept: f.accept, trans: f.trans, states: c.Issued()}
}

func (n *NFA) Start() StateID { return n.start }

// IsAccept reports whether id is an accept state.
func (n *NFA) IsAccept(id StateID) bool { return n.accept.Has(id) }

// AcceptStates returns a copy of the accept set.
func (n *NFA) AcceptStates() StateSet { return n.accept.Union(nil) }

// NumStates is the number of state IDs issued while building n.
func (n *NFA) NumStates() int { return n.states }

// Transition returns the targets of state on sym. ok is false when no such
// transition exists; callers treat that as an empty contribution.
func (n *NFA) Transition(state StateID, sym Symbol) (targets StateSet, ok bool) {
	targets, ok = n.trans[transitionKey{state, sym}]
	return targets, ok
}

// EpsilonClosure returns every state reachable from set through zero or
// more epsilon transitions. set itself is not modified.
func (n *NFA) EpsilonClosure(set StateSet) StateSet {
	closure := make(StateSet, len(set))
	stack := make([]StateID, 0, len(set))
	for id := range set {
		closure.Add(id)
		stack = append(stack, id)
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		next, ok := n.Transition(id, Epsilon)
		if !ok {
			continue
		}
		for to := range next {
			if !closure.Has(to) {
				closure.Add(to)
				stack = append(stack, to)
			}
		}
	}
	return closure
}

// move returns the union of the b-transitions of every state in set.
func (n *NFA) move(set StateSet, b byte) StateSet {
	out := StateSet{}
	for id := range set {
		next, ok := n.Transition(id, Byte(b))
		if !ok {
			continue
		}
		for to := range next {
			out.Add(to)
		}
	}
	return out
}

// Alphabet returns the bytes that label at least one transition, in
// ascending order.
func (n *NFA) Alphabet() []byte {
	var seen [256]bool
	for k := range n.trans {
		if !k.sym.IsEpsilon() {
			seen[k.sym] = true
		}
	}
	var out []byte
	for b, ok := range seen {
		if ok {
			out = append(out, byte(b))
		}
	}
	return out
}

// ToDFA returns the lazy subset-construction view of n.
func (n *NFA) ToDFA(cfg Config) *DFA { return newDFA(n, cfg) }
