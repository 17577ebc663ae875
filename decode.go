package mathml

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Decode reads expression tree written in YAML. Every node is a mapping with a single
// key naming the node type, for example:
//
//	frac:
//	  num: {number: "1"}
//	  denom: {letter: x}
//
// Matrix separators may be written as plain "ampersand" and "newline" scalars.
func Decode(r io.Reader) (Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.New("document is empty")
		}

		return nil, errors.Wrap(err, "unable to read document")
	}

	return decode(&doc)
}

func decode(n *yaml.Node) (Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, errors.New("document is empty")
		}

		return decode(n.Content[0])
	case yaml.AliasNode:
		return decode(n.Alias)
	case yaml.ScalarNode:
		switch n.Value {
		case "ampersand":
			return Ampersand{}, nil
		case "newline":
			return NewLine{}, nil
		}

		return nil, errors.Errorf("line %d: unexpected scalar %#v, expected a node", n.Line, n.Value)
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, errors.Errorf("line %d: node must have exactly one key", n.Line)
		}

		node, err := decodeKind(n.Content[0].Value, n.Content[1])
		if err != nil {
			return nil, errors.Wrap(err, n.Content[0].Value)
		}

		return node, nil
	default:
		return nil, errors.Errorf("line %d: unexpected sequence, expected a node", n.Line)
	}
}

func decodeKind(kind string, v *yaml.Node) (Node, error) {
	switch kind {
	case "number":
		s, err := scalar(v)
		return Number{Digits: s}, err
	case "letter":
		return decodeLetter(v)
	case "operator":
		c, err := char(v)
		return Operator{Char: c}, err
	case "function":
		return decodeFunction(v)
	case "space":
		s, err := scalar(v)
		if err != nil {
			return nil, err
		}

		space, err := ParseSpace(s)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", v.Line)
		}

		return space, nil
	case "subscript":
		f, err := fields(v, "target", "sub")
		if err != nil {
			return nil, err
		}

		return Subscript{Target: f["target"], Sub: f["sub"]}, nil
	case "superscript":
		f, err := fields(v, "target", "sup")
		if err != nil {
			return nil, err
		}

		return Superscript{Target: f["target"], Sup: f["sup"]}, nil
	case "subsup":
		f, err := fields(v, "target", "sub", "sup")
		if err != nil {
			return nil, err
		}

		return SubSup{Target: f["target"], Sub: f["sub"], Sup: f["sup"]}, nil
	case "overop", "underop":
		return decodeAccent(kind, v)
	case "overset":
		f, err := fields(v, "over", "target")
		if err != nil {
			return nil, err
		}

		return Overset{Over: f["over"], Target: f["target"]}, nil
	case "underset":
		f, err := fields(v, "under", "target")
		if err != nil {
			return nil, err
		}

		return Underset{Under: f["under"], Target: f["target"]}, nil
	case "under":
		f, err := fields(v, "target", "under")
		if err != nil {
			return nil, err
		}

		return Under{Target: f["target"], Under: f["under"]}, nil
	case "underover":
		f, err := fields(v, "target", "under", "over")
		if err != nil {
			return nil, err
		}

		return UnderOver{Target: f["target"], Under: f["under"], Over: f["over"]}, nil
	case "sqrt":
		return decodeSqrt(v)
	case "frac":
		f, err := fields(v, "num", "denom")
		if err != nil {
			return nil, err
		}

		return Frac{Num: f["num"], Denom: f["denom"]}, nil
	case "row":
		children, err := sequence(v)
		return Row(children), err
	case "fenced":
		return decodeFenced(v)
	case "otheroperator":
		s, err := scalar(v)
		return OtherOperator(s), err
	case "text":
		s, err := scalar(v)
		return Text(s), err
	case "matrix":
		children, err := sequence(v)
		return Matrix(children), err
	case "slashed":
		child, err := decode(v)
		return Slashed{Node: child}, err
	case "undefined":
		s, err := scalar(v)
		return Undefined{Message: s}, err
	case "ampersand":
		return Ampersand{}, nil
	case "newline":
		return NewLine{}, nil
	default:
		return nil, errors.Errorf("line %d: unknown node %#v", v.Line, kind)
	}
}

func decodeLetter(v *yaml.Node) (Node, error) {
	if v.Kind == yaml.ScalarNode {
		c, err := char(v)
		return Letter{Char: c, Variant: Italic}, err
	}

	m, err := mapping(v, "char", "variant")
	if err != nil {
		return nil, err
	}

	if m["char"] == nil {
		return nil, errors.Errorf("line %d: char is required", v.Line)
	}

	c, err := char(m["char"])
	if err != nil {
		return nil, err
	}

	variant := Italic
	if m["variant"] != nil {
		name, err := scalar(m["variant"])
		if err != nil {
			return nil, err
		}

		if variant, err = ParseVariant(name); err != nil {
			return nil, errors.Wrapf(err, "line %d", m["variant"].Line)
		}
	}

	return Letter{Char: c, Variant: variant}, nil
}

func decodeFunction(v *yaml.Node) (Node, error) {
	if v.Kind == yaml.ScalarNode {
		return Function{Name: v.Value}, nil
	}

	m, err := mapping(v, "name", "arg")
	if err != nil {
		return nil, err
	}

	if m["name"] == nil {
		return nil, errors.Errorf("line %d: name is required", v.Line)
	}

	name, err := scalar(m["name"])
	if err != nil {
		return nil, err
	}

	f := Function{Name: name}
	if m["arg"] != nil {
		if f.Arg, err = decode(m["arg"]); err != nil {
			return nil, errors.Wrap(err, "arg")
		}
	}

	return f, nil
}

func decodeAccent(kind string, v *yaml.Node) (Node, error) {
	m, err := mapping(v, "op", "accent", "target")
	if err != nil {
		return nil, err
	}

	if m["op"] == nil || m["target"] == nil {
		return nil, errors.Errorf("line %d: op and target are required", v.Line)
	}

	op, err := char(m["op"])
	if err != nil {
		return nil, err
	}

	accent := AccentTrue
	if m["accent"] != nil {
		var b bool
		if err := m["accent"].Decode(&b); err != nil {
			return nil, errors.Wrapf(err, "line %d", m["accent"].Line)
		}

		accent = Accent(b)
	}

	target, err := decode(m["target"])
	if err != nil {
		return nil, errors.Wrap(err, "target")
	}

	if kind == "underop" {
		return UnderOp{Op: op, Accent: accent, Target: target}, nil
	}

	return OverOp{Op: op, Accent: accent, Target: target}, nil
}

func decodeSqrt(v *yaml.Node) (Node, error) {
	if !hasKey(v, "degree") && !hasKey(v, "content") {
		// a bare node is the radicand of a square root
		content, err := decode(v)
		if err != nil {
			return nil, err
		}

		return Sqrt{Content: content}, nil
	}

	m, err := mapping(v, "degree", "content")
	if err != nil {
		return nil, err
	}

	if m["content"] == nil {
		return nil, errors.Errorf("line %d: content is required", v.Line)
	}

	s := Sqrt{}
	if s.Content, err = decode(m["content"]); err != nil {
		return nil, errors.Wrap(err, "content")
	}

	if m["degree"] != nil {
		if s.Degree, err = decode(m["degree"]); err != nil {
			return nil, errors.Wrap(err, "degree")
		}
	}

	return s, nil
}

func decodeFenced(v *yaml.Node) (Node, error) {
	m, err := mapping(v, "open", "close", "content")
	if err != nil {
		return nil, err
	}

	if m["open"] == nil || m["close"] == nil || m["content"] == nil {
		return nil, errors.Errorf("line %d: open, close and content are required", v.Line)
	}

	open, err := scalar(m["open"])
	if err != nil {
		return nil, err
	}

	closing, err := scalar(m["close"])
	if err != nil {
		return nil, err
	}

	content, err := decode(m["content"])
	if err != nil {
		return nil, errors.Wrap(err, "content")
	}

	return Fenced{Open: Delimiter(open), Close: Delimiter(closing), Content: content}, nil
}

// mapping returns values of a mapping node by key, keys other than allowed are rejected
func mapping(v *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if v.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: expected a mapping", v.Line)
	}

	m := map[string]*yaml.Node{}
	for i := 0; i+1 < len(v.Content); i += 2 {
		key := v.Content[i].Value

		known := false
		for _, a := range allowed {
			known = known || a == key
		}

		if !known {
			return nil, errors.Errorf("line %d: unexpected key %#v", v.Content[i].Line, key)
		}

		if _, ok := m[key]; ok {
			return nil, errors.Errorf("line %d: duplicate key %#v", v.Content[i].Line, key)
		}

		m[key] = v.Content[i+1]
	}

	return m, nil
}

func hasKey(v *yaml.Node, key string) bool {
	if v.Kind != yaml.MappingNode {
		return false
	}

	for i := 0; i+1 < len(v.Content); i += 2 {
		if v.Content[i].Value == key {
			return true
		}
	}

	return false
}

// fields decodes all listed keys of a mapping into nodes, every key is required
func fields(v *yaml.Node, keys ...string) (map[string]Node, error) {
	m, err := mapping(v, keys...)
	if err != nil {
		return nil, err
	}

	nodes := map[string]Node{}
	for _, key := range keys {
		if m[key] == nil {
			return nil, errors.Errorf("line %d: %s is required", v.Line, key)
		}

		if nodes[key], err = decode(m[key]); err != nil {
			return nil, errors.Wrap(err, key)
		}
	}

	return nodes, nil
}

func sequence(v *yaml.Node) ([]Node, error) {
	if v.Kind != yaml.SequenceNode {
		return nil, errors.Errorf("line %d: expected a sequence", v.Line)
	}

	nodes := make([]Node, 0, len(v.Content))
	for index, item := range v.Content {
		node, err := decode(item)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", index)
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

func scalar(v *yaml.Node) (string, error) {
	if v.Kind != yaml.ScalarNode {
		return "", errors.Errorf("line %d: expected a scalar", v.Line)
	}

	return v.Value, nil
}

func char(v *yaml.Node) (rune, error) {
	s, err := scalar(v)
	if err != nil {
		return 0, err
	}

	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf("line %d: expected a single character, got %#v", v.Line, s)
	}

	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
