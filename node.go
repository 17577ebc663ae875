package mathml

import "reflect"

// Node is an element of an expression tree. The set of node types is closed, only
// types declared in this package implement it. Pointers to them are accepted too and
// behave the same as values.
type Node interface {
	node()
}

// Number is a numeric literal, kept as it was written.
type Number struct {
	Digits string
}

// Letter is a single identifier glyph.
type Letter struct {
	Char    rune
	Variant Variant
}

// Operator is a single-glyph operator.
type Operator struct {
	Char rune
}

// Function is a named function, Arg is nil when the function is not applied.
type Function struct {
	Name string
	Arg  Node
}

// Space is a horizontal gap, Width is in em.
type Space struct {
	Width float32
}

type Subscript struct {
	Target Node
	Sub    Node
}

type Superscript struct {
	Target Node
	Sup    Node
}

type SubSup struct {
	Target Node
	Sub    Node
	Sup    Node
}

// OverOp places an accent-marked operator above the target.
type OverOp struct {
	Op     rune
	Accent Accent
	Target Node
}

// UnderOp places an accent-marked operator below the target.
type UnderOp struct {
	Op     rune
	Accent Accent
	Target Node
}

type Overset struct {
	Over   Node
	Target Node
}

type Underset struct {
	Under  Node
	Target Node
}

type Under struct {
	Target Node
	Under  Node
}

type UnderOver struct {
	Target Node
	Under  Node
	Over   Node
}

// Sqrt is a square root, or an n-th root when Degree is not nil.
type Sqrt struct {
	Degree  Node
	Content Node
}

type Frac struct {
	Num   Node
	Denom Node
}

// Row groups nodes horizontally.
type Row []Node

// Fenced is a sub-expression between stretchy delimiters.
type Fenced struct {
	Open    string
	Close   string
	Content Node
}

// OtherOperator is an operator spelled with more than one character.
type OtherOperator string

// Text is literal text content.
type Text string

// Matrix is a flattened table: cells separated by Ampersand and rows by NewLine.
type Matrix []Node

// Ampersand separates columns of a Matrix.
type Ampersand struct{}

// NewLine separates rows of a Matrix.
type NewLine struct{}

// Slashed overlays a negation stroke on a Letter or an Operator.
type Slashed struct {
	Node Node
}

// Undefined stands for something that could not be parsed, Message describes why.
type Undefined struct {
	Message string
}

func (Number) node()        {}
func (Letter) node()        {}
func (Operator) node()      {}
func (Function) node()      {}
func (Space) node()         {}
func (Subscript) node()     {}
func (Superscript) node()   {}
func (SubSup) node()        {}
func (OverOp) node()        {}
func (UnderOp) node()       {}
func (Overset) node()       {}
func (Underset) node()      {}
func (Under) node()         {}
func (UnderOver) node()     {}
func (Sqrt) node()          {}
func (Frac) node()          {}
func (Row) node()           {}
func (Fenced) node()        {}
func (OtherOperator) node() {}
func (Text) node()          {}
func (Matrix) node()        {}
func (Ampersand) node()     {}
func (NewLine) node()       {}
func (Slashed) node()       {}
func (Undefined) node()     {}

// value returns the node a pointer points to, so trees built of &Frac{...} and the like
// render the same as trees of values. A nil pointer is a nil node.
func value(node Node) Node {
	v := reflect.ValueOf(node)
	if v.Kind() != reflect.Pointer {
		return node
	}

	if v.IsNil() {
		return nil
	}

	n, _ := v.Elem().Interface().(Node)
	return n
}
