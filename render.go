package mathml

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

const (
	functionApplication = "&#x2061;"
	negationStroke      = "&#x0338;"
)

// Render writes MathML markup of the node to w. Malformed nodes do not stop rendering,
// they are written as a visible parse error in place. The only errors returned are
// the ones coming from w.
func Render(w io.Writer, node Node) error {
	return render(w, node)
}

func render(w io.Writer, node Node) error {
	switch n := value(node).(type) {
	case Number:
		_, err := fmt.Fprint(w, "<mn>", n.Digits, "</mn>")
		return err
	case Letter:
		return renderLetter(w, n, "")
	case Operator:
		_, err := fmt.Fprint(w, "<mo>", string(n.Char), "</mo>")
		return err
	case Function:
		return renderFunction(w, n)
	case Space:
		_, err := fmt.Fprint(w, `<mspace width="`, strconv.FormatFloat(float64(n.Width), 'f', -1, 32), `em"/>`)
		return err
	case Subscript:
		return renderAndWrap(w, "<msub>", "</msub>", n.Target, n.Sub)
	case Superscript:
		return renderAndWrap(w, "<msup>", "</msup>", n.Target, n.Sup)
	case SubSup:
		return renderAndWrap(w, "<msubsup>", "</msubsup>", n.Target, n.Sub, n.Sup)
	case OverOp:
		return renderAccent(w, "mover", n.Op, n.Accent, n.Target)
	case UnderOp:
		return renderAccent(w, "munder", n.Op, n.Accent, n.Target)
	case Overset:
		return renderAndWrap(w, "<mover>", "</mover>", n.Target, n.Over)
	case Underset:
		return renderAndWrap(w, "<munder>", "</munder>", n.Target, n.Under)
	case Under:
		return renderAndWrap(w, "<munder>", "</munder>", n.Target, n.Under)
	case UnderOver:
		return renderAndWrap(w, "<munderover>", "</munderover>", n.Target, n.Under, n.Over)
	case Sqrt:
		// mroot takes the base first and the index second
		if n.Degree != nil {
			return renderAndWrap(w, "<mroot>", "</mroot>", n.Content, n.Degree)
		}

		return renderAndWrap(w, "<msqrt>", "</msqrt>", n.Content)
	case Frac:
		return renderAndWrap(w, "<mfrac>", "</mfrac>", n.Num, n.Denom)
	case Row:
		return renderAndWrap(w, "<mrow>", "</mrow>", n...)
	case Fenced:
		return renderAndWrap(w,
			`<mrow><mo stretchy="true" form="prefix">`+n.Open+"</mo>",
			`<mo stretchy="true" form="postfix">`+n.Close+"</mo></mrow>",
			n.Content,
		)
	case OtherOperator:
		_, err := fmt.Fprint(w, "<mo>", string(n), "</mo>")
		return err
	case Text:
		_, err := fmt.Fprint(w, "<mtext>", string(n), "</mtext>")
		return err
	case Matrix:
		return renderMatrix(w, n)
	case Slashed:
		return renderSlashed(w, n)
	default:
		// Undefined, sentinels outside of a matrix and nil
		_, err := fmt.Fprint(w, "<mtext>[PARSE ERROR: ", describe(node), "]</mtext>")
		return err
	}
}

func renderAndWrap(w io.Writer, prefix, suffix string, children ...Node) error {
	if _, err := fmt.Fprint(w, prefix); err != nil {
		return err
	}

	for _, child := range children {
		if err := render(w, child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, suffix)
	return err
}

func renderLetter(w io.Writer, l Letter, overlay string) error {
	if l.Variant == Italic {
		_, err := fmt.Fprint(w, "<mi>", string(l.Char), overlay, "</mi>")
		return err
	}

	_, err := fmt.Fprint(w, `<mi mathvariant="`, l.Variant.String(), `">`, string(l.Char), overlay, "</mi>")
	return err
}

func renderFunction(w io.Writer, f Function) error {
	if _, err := fmt.Fprint(w, "<mi>", f.Name, "</mi>"); err != nil {
		return err
	}

	if f.Arg == nil {
		return nil
	}

	if _, err := fmt.Fprint(w, "<mo>", functionApplication, "</mo>"); err != nil {
		return err
	}

	return render(w, f.Arg)
}

func renderAccent(w io.Writer, element string, op rune, accent Accent, target Node) error {
	return renderAndWrap(w,
		"<"+element+">",
		`<mo accent="`+accent.String()+`">`+string(op)+"</mo></"+element+">",
		target,
	)
}

// renderSlashed strikes through letters and operators, anything else is rendered as is.
func renderSlashed(w io.Writer, s Slashed) error {
	switch n := value(s.Node).(type) {
	case Letter:
		return renderLetter(w, n, negationStroke)
	case Operator:
		_, err := fmt.Fprint(w, "<mo>", string(n.Char), negationStroke, "</mo>")
		return err
	default:
		return render(w, s.Node)
	}
}

// renderMatrix folds a flat list of cells and separators into a table. A separator
// at the very end does not open an empty cell or row.
func renderMatrix(w io.Writer, m Matrix) error {
	var table, row, cell bytes.Buffer

	closeCell := func() {
		row.WriteString("<mtd>")
		cell.WriteTo(&row)
		row.WriteString("</mtd>")
	}

	closeRow := func() {
		table.WriteString("<mtr>")
		row.WriteTo(&table)
		table.WriteString("</mtr>")
	}

	for index, child := range m {
		last := index == len(m)-1

		switch value(child).(type) {
		case NewLine:
			if !last {
				closeCell()
				closeRow()
			}
		case Ampersand:
			if !last {
				closeCell()
			}
		default:
			if err := render(&cell, child); err != nil {
				return err
			}
		}
	}

	closeCell()
	closeRow()

	_, err := fmt.Fprint(w, "<mtable>", table.String(), "</mtable>")
	return err
}

// describe returns debug description of a node which can't be rendered.
func describe(node Node) string {
	switch n := value(node).(type) {
	case nil:
		return "nil"
	case Undefined:
		return fmt.Sprintf("Undefined(%q)", n.Message)
	case Ampersand:
		return "Ampersand"
	case NewLine:
		return "NewLine"
	default:
		return fmt.Sprintf("%T", node)
	}
}
