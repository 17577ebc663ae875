package mathml

import "strings"

// String returns MathML markup of the node.
func String(node Node) string {
	var out strings.Builder

	// strings.Builder never returns an error
	_ = render(&out, node)

	return out.String()
}
