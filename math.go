package mathml

import (
	"fmt"
	"io"
)

const Namespace = "http://www.w3.org/1998/Math/MathML"

// Display selects how the formula is laid out on the page.
type Display int

const (
	DisplayInline Display = iota
	DisplayBlock
)

func (d Display) String() string {
	if d == DisplayBlock {
		return "block"
	}

	return "inline"
}

func ParseDisplay(name string) (Display, error) {
	switch name {
	case "inline":
		return DisplayInline, nil
	case "block":
		return DisplayBlock, nil
	default:
		return DisplayInline, fmt.Errorf("display %#v is not supported, use inline or block", name)
	}
}

// Math writes the node wrapped into the math root element.
func Math(w io.Writer, node Node, display Display) error {
	if _, err := fmt.Fprint(w, `<math xmlns="`, Namespace, `" display="`, display.String(), `">`); err != nil {
		return err
	}

	if err := render(w, node); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "</math>")
	return err
}
