package regex

import "fmt"

type nodeType int

const (
	nEmpty nodeType = iota // matches the empty string
	nChar
	nConcat
	nUnion
	nStar
	nConsumed // left behind by toFragment
)

// astNode is the parse tree of a pattern. Children are owned by exactly one
// parent and are detached when the node is converted to a fragment.
type astNode struct {
	typ   nodeType
	left  *astNode // also the operand of nStar
	right *astNode
	ch    byte // for nChar
}

func emptyNode() *astNode                { return &astNode{typ: nEmpty} }
func charNode(c byte) *astNode           { return &astNode{typ: nChar, ch: c} }
func concatNode(l, r *astNode) *astNode  { return &astNode{typ: nConcat, left: l, right: r} }
func unionNode(l, r *astNode) *astNode   { return &astNode{typ: nUnion, left: l, right: r} }
func starNode(operand *astNode) *astNode { return &astNode{typ: nStar, left: operand} }

func (n *astNode) String() string {
	switch n.typ {
	case nEmpty:
		return "ε"
	case nChar:
		return fmt.Sprintf("%q", rune(n.ch))
	case nConcat:
		return fmt.Sprintf("Concat(%s, %s)", n.left, n.right)
	case nUnion:
		return fmt.Sprintf("Union(%s, %s)", n.left, n.right)
	case nStar:
		return fmt.Sprintf("Star(%s)", n.left)
	default:
		return "<consumed>"
	}
}

// take detaches the node's payload and marks it consumed.
func (n *astNode) take() astNode {
	if n.typ == nConsumed {
		panic("regex: AST node converted twice")
	}
	v := *n
	*n = astNode{typ: nConsumed}
	return v
}

// toFragment runs Thompson's construction over the tree rooted at n,
// consuming it. Every state comes from c.
func (n *astNode) toFragment(c *Counter) *fragment {
	node := n.take()
	switch node.typ {
	case nEmpty:
		s := c.NewState()
		return newFragment(s, s)

	case nChar:
		s1 := c.NewState()
		s2 := c.NewState()
		f := newFragment(s1, s2)
		f.addTransition(s1, Byte(node.ch), s2)
		return f

	case nConcat:
		lhs := node.left.toFragment(c)
		rhs := node.right.toFragment(c)
		f := lhs.merge(rhs)
		for s := range lhs.accept {
			f.addTransition(s, Epsilon, rhs.start)
		}
		f.start = lhs.start
		f.accept = rhs.accept
		return f

	case nUnion:
		lhs := node.left.toFragment(c)
		rhs := node.right.toFragment(c)
		f := lhs.merge(rhs)
		start := c.NewState()
		f.addTransition(start, Epsilon, lhs.start)
		f.addTransition(start, Epsilon, rhs.start)
		f.start = start
		f.accept = lhs.accept.Union(rhs.accept)
		return f

	case nStar:
		inner := node.left.toFragment(c)
		f := inner.merge(nil)
		start := c.NewState()
		for s := range inner.accept {
			f.addTransition(s, Epsilon, inner.start)
		}
		f.addTransition(start, Epsilon, inner.start)
		f.start = start
		f.accept = inner.accept.Union(NewStateSet(start))
		return f

	default:
		panic(fmt.Sprintf("regex: unknown AST node type %d", node.typ))
	}
}
