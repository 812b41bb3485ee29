package regex

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// WriteNFADot writes a Graphviz digraph of n to w.
func WriteNFADot(w io.Writer, n *NFA) error {
	var buf bytes.Buffer
	buf.WriteString("digraph NFA {\n    rankdir=LR;\n")

	ids := NewStateSet(n.start)
	keys := make([]transitionKey, 0, len(n.trans))
	for k, targets := range n.trans {
		keys = append(keys, k)
		ids.Add(k.from)
		for to := range targets {
			ids.Add(to)
		}
	}
	for id := range n.accept {
		ids.Add(id)
	}
	for _, id := range ids.Sorted() {
		fmt.Fprintf(&buf, "    n%d [shape=%s];\n", id, shape(n.IsAccept(id)))
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].sym < keys[j].sym
	})
	for _, k := range keys {
		for _, to := range n.trans[k].Sorted() {
			fmt.Fprintf(&buf, "    n%d -> n%d [label=%s];\n", k.from, to, strconv.Quote(k.sym.label()))
		}
	}
	fmt.Fprintf(&buf, "    _start [shape=point]; _start -> n%d;\n}\n", n.start)

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteTableDot writes a Graphviz digraph of an explicit DFA to w.
func WriteTableDot(w io.Writer, t *Table) error {
	var buf bytes.Buffer
	buf.WriteString("digraph DFA {\n    rankdir=LR;\n")
	for s := 0; s < t.NumStates(); s++ {
		fmt.Fprintf(&buf, "    q%d [shape=%s];\n", s, shape(t.Accept[s]))
	}
	for s := 0; s < t.NumStates(); s++ {
		for _, c := range t.Alpha {
			if to, ok := t.Next[s][c]; ok {
				fmt.Fprintf(&buf, "    q%d -> q%d [label=%s];\n", s, to, strconv.Quote(Byte(c).label()))
			}
		}
	}
	fmt.Fprintf(&buf, "    _start [shape=point]; _start -> q%d;\n}\n", t.Start)

	_, err := w.Write(buf.Bytes())
	return err
}

func shape(accept bool) string {
	if accept {
		return "doublecircle"
	}
	return "circle"
}

// label is the edge text for s: the byte itself when printable.
func (s Symbol) label() string {
	if s == Epsilon {
		return "ε"
	}
	if s >= 0x20 && s < 0x7f {
		return string(rune(s))
	}
	return fmt.Sprintf("\\x%02x", int(s))
}
