package regex

import (
	"strconv"
	"strings"
)

// Minimize returns the smallest table accepting the same language as t.
//
// The table is first completed with an explicit dead state, then states are
// split by partition refinement until every block agrees on acceptance and
// on the block reached by each symbol. The block holding the dead state is
// dropped from the result.
func Minimize(t *Table) *Table {
	if t == nil || t.NumStates() == 0 {
		return t
	}
	n := t.NumStates()
	dead := n
	target := func(s int, b byte) int {
		if s == dead {
			return dead
		}
		if next, ok := t.Next[s][b]; ok {
			return next
		}
		return dead
	}

	// initial partition: accepting / rejecting
	block := make([]int, n+1)
	for s := 0; s < n; s++ {
		if t.Accept[s] {
			block[s] = 1
		}
	}
	blocks := countBlocks(block)

	for {
		sig := make(map[string]int)
		next := make([]int, n+1)
		for s := 0; s <= n; s++ {
			var b strings.Builder
			b.WriteString(strconv.Itoa(block[s]))
			for _, c := range t.Alpha {
				b.WriteByte(':')
				b.WriteString(strconv.Itoa(block[target(s, c)]))
			}
			k := b.String()
			id, ok := sig[k]
			if !ok {
				id = len(sig)
				sig[k] = id
			}
			next[s] = id
		}
		block = next
		if len(sig) == blocks {
			break
		}
		blocks = len(sig)
	}

	// renumber live blocks, start block first
	deadBlock := block[dead]
	renum := map[int]int{}
	order := []int{t.Start}
	for s := 0; s < n; s++ {
		order = append(order, s)
	}
	out := &Table{Alpha: t.Alpha}
	for _, s := range order {
		b := block[s]
		if _, ok := renum[b]; ok {
			continue
		}
		if b == deadBlock && s != t.Start {
			continue
		}
		renum[b] = len(out.Accept)
		out.Accept = append(out.Accept, t.Accept[s])
		out.Next = append(out.Next, map[byte]int{})
	}
	for s := 0; s < n; s++ {
		from, ok := renum[block[s]]
		if !ok || block[s] == deadBlock {
			continue
		}
		for c, to := range t.Next[s] {
			if block[to] == deadBlock {
				continue
			}
			out.Next[from][c] = renum[block[to]]
		}
	}
	out.Start = renum[block[t.Start]]
	return out
}

func countBlocks(block []int) int {
	seen := map[int]struct{}{}
	for _, b := range block {
		seen[b] = struct{}{}
	}
	return len(seen)
}
