package mathml

import "fmt"

// Variant is a letter style, it maps to the mathvariant attribute.
type Variant int

const (
	Italic Variant = iota // default style, rendered without mathvariant
	Normal
	Bold
	BoldItalic
	DoubleStruck
	BoldFraktur
	Script
	BoldScript
	Fraktur
	SansSerif
	BoldSansSerif
	SansSerifItalic
	SansSerifBoldItalic
	Monospace
)

var variants = []string{
	Italic:              "italic",
	Normal:              "normal",
	Bold:                "bold",
	BoldItalic:          "bold-italic",
	DoubleStruck:        "double-struck",
	BoldFraktur:         "bold-fraktur",
	Script:              "script",
	BoldScript:          "bold-script",
	Fraktur:             "fraktur",
	SansSerif:           "sans-serif",
	BoldSansSerif:       "bold-sans-serif",
	SansSerifItalic:     "sans-serif-italic",
	SansSerifBoldItalic: "sans-serif-bold-italic",
	Monospace:           "monospace",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variants) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}

	return variants[v]
}

// ParseVariant returns variant by its mathvariant name, for example "double-struck".
func ParseVariant(name string) (Variant, error) {
	for v, n := range variants {
		if n == name {
			return Variant(v), nil
		}
	}

	return Italic, fmt.Errorf("letter variant %#v is not supported", name)
}

// Accent tells whether an over or under operator is an accent.
type Accent bool

const (
	AccentTrue  Accent = true
	AccentFalse Accent = false
)

func (a Accent) String() string {
	if a {
		return "true"
	}

	return "false"
}
