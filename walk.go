package mathml

import "github.com/samber/lo"

// Children returns direct children of the node in the order they are rendered.
func Children(node Node) []Node {
	return lo.Filter(children(node), func(child Node, _ int) bool {
		return value(child) != nil
	})
}

// children lists required children even when they are nil, optional ones only when set.
func children(node Node) []Node {
	switch n := value(node).(type) {
	case Function:
		if n.Arg == nil {
			return nil
		}

		return []Node{n.Arg}
	case Subscript:
		return []Node{n.Target, n.Sub}
	case Superscript:
		return []Node{n.Target, n.Sup}
	case SubSup:
		return []Node{n.Target, n.Sub, n.Sup}
	case OverOp:
		return []Node{n.Target}
	case UnderOp:
		return []Node{n.Target}
	case Overset:
		return []Node{n.Target, n.Over}
	case Underset:
		return []Node{n.Target, n.Under}
	case Under:
		return []Node{n.Target, n.Under}
	case UnderOver:
		return []Node{n.Target, n.Under, n.Over}
	case Sqrt:
		if n.Degree == nil {
			return []Node{n.Content}
		}

		return []Node{n.Content, n.Degree}
	case Frac:
		return []Node{n.Num, n.Denom}
	case Row:
		return n
	case Fenced:
		return []Node{n.Content}
	case Matrix:
		return n
	case Slashed:
		return []Node{n.Node}
	default:
		return nil
	}
}

// Walk visits the node and its descendants in pre-order, children of a node are only
// visited when fn returns true for it.
func Walk(node Node, fn func(Node) bool) {
	if !fn(node) {
		return
	}

	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Diagnostics returns a message for every node rendered as a parse error: the message
// of an undefined node, or the description of a missing node or of a separator found
// outside of a matrix.
func Diagnostics(node Node) []string {
	return diagnostics(node, false)
}

func diagnostics(node Node, inMatrix bool) []string {
	switch n := value(node).(type) {
	case nil:
		return []string{describe(nil)}
	case Undefined:
		return []string{n.Message}
	case Ampersand, NewLine:
		if inMatrix {
			return nil
		}

		return []string{describe(n)}
	case Matrix:
		inMatrix = true
	default:
		inMatrix = false
	}

	return lo.FlatMap(children(node), func(child Node, _ int) []string {
		return diagnostics(child, inMatrix)
	})
}
