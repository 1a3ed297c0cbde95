// Package treeyaml builds markup trees from a small YAML vocabulary,
// mainly for fixtures and declarative page skeletons.
//
// The vocabulary, at any nesting level:
//
//	tag: div             # an element
//	attrs:               # optional, order preserved
//	  class: card
//	  disabled:          # null value -> boolean attribute
//	children:            # optional
//	  - "plain scalars are text nodes"
//	  - text: "explicit text"
//	  - raw: "<hr>"
//	  - fragment:
//	      - "grouped"
//
// A top-level sequence decodes to a fragment. An empty document decodes
// to the empty fragment.
package treeyaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	vellum "github.com/vellum-format/go-vellum"
	"github.com/vellum-format/go-vellum/debug"
)

var ErrDecode = errors.New("tree decode error")

// Unmarshal decodes one YAML document into a tree.
func Unmarshal(data []byte) (vellum.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return vellum.None(), nil
	}
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return vellum.Node{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	n, err := node(doc)
	if err != nil {
		return vellum.Node{}, err
	}
	if debug.Decode() {
		debug.LogAny(map[string]any{"decoded": n.CountNodes()})
	}
	return n, nil
}

// Decode reads all of r and decodes it as one YAML document.
func Decode(r io.Reader) (vellum.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return vellum.Node{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Unmarshal(data)
}

func node(v any) (vellum.Node, error) {
	switch v := v.(type) {
	case nil:
		return vellum.None(), nil
	case string:
		return vellum.Text(v), nil
	case []any:
		kids, err := nodes(v)
		if err != nil {
			return vellum.Node{}, err
		}
		return vellum.Fragment(kids), nil
	case yaml.MapSlice:
		return mappingNode(v)
	default:
		return vellum.Node{}, fmt.Errorf("%w: cannot build a node from %T", ErrDecode, v)
	}
}

func nodes(vs []any) ([]vellum.Node, error) {
	res := make([]vellum.Node, len(vs))
	for i, v := range vs {
		n, err := node(v)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

func mappingNode(m yaml.MapSlice) (vellum.Node, error) {
	fields := map[string]any{}
	for _, item := range m {
		key, ok := item.Key.(string)
		if !ok {
			return vellum.Node{}, fmt.Errorf("%w: non-string key %v", ErrDecode, item.Key)
		}
		if _, dup := fields[key]; dup {
			return vellum.Node{}, fmt.Errorf("%w: duplicate key %q", ErrDecode, key)
		}
		fields[key] = item.Value
	}

	switch {
	case has(fields, "text"):
		return leaf(fields, "text", vellum.Text)
	case has(fields, "raw"):
		return leaf(fields, "raw", vellum.Raw)
	case has(fields, "fragment"):
		return fragmentNode(fields)
	case has(fields, "tag"):
		return elementNode(fields)
	default:
		return vellum.Node{}, fmt.Errorf("%w: mapping needs one of tag, text, raw, fragment", ErrDecode)
	}
}

func leaf(fields map[string]any, key string, build func(string) vellum.Node) (vellum.Node, error) {
	if len(fields) != 1 {
		return vellum.Node{}, fmt.Errorf("%w: %s node takes no other keys", ErrDecode, key)
	}
	s, err := scalar(fields[key])
	if err != nil {
		return vellum.Node{}, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
	}
	return build(s), nil
}

func fragmentNode(fields map[string]any) (vellum.Node, error) {
	if len(fields) != 1 {
		return vellum.Node{}, fmt.Errorf("%w: fragment node takes no other keys", ErrDecode)
	}
	switch v := fields["fragment"].(type) {
	case nil:
		return vellum.None(), nil
	case []any:
		kids, err := nodes(v)
		if err != nil {
			return vellum.Node{}, err
		}
		return vellum.Fragment(kids), nil
	default:
		return vellum.Node{}, fmt.Errorf("%w: fragment wants a sequence, got %T", ErrDecode, v)
	}
}

func elementNode(fields map[string]any) (vellum.Node, error) {
	for key := range fields {
		switch key {
		case "tag", "attrs", "children":
		default:
			return vellum.Node{}, fmt.Errorf("%w: unexpected element key %q", ErrDecode, key)
		}
	}
	tag, ok := fields["tag"].(string)
	if !ok {
		return vellum.Node{}, fmt.Errorf("%w: tag wants a string, got %T", ErrDecode, fields["tag"])
	}

	var attrs []vellum.Attr
	if raw, ok := fields["attrs"]; ok && raw != nil {
		m, ok := raw.(yaml.MapSlice)
		if !ok {
			return vellum.Node{}, fmt.Errorf("%w: attrs wants a mapping, got %T", ErrDecode, raw)
		}
		attrs = make([]vellum.Attr, 0, len(m))
		for _, item := range m {
			key, ok := item.Key.(string)
			if !ok {
				return vellum.Node{}, fmt.Errorf("%w: non-string attr key %v", ErrDecode, item.Key)
			}
			if item.Value == nil {
				attrs = append(attrs, vellum.NewAttr(key))
				continue
			}
			val, err := scalar(item.Value)
			if err != nil {
				return vellum.Node{}, fmt.Errorf("%w: attr %q: %v", ErrDecode, key, err)
			}
			attrs = append(attrs, vellum.NewAttr(key, val))
		}
	}

	var kids []vellum.Node
	if raw, ok := fields["children"]; ok && raw != nil {
		seq, ok := raw.([]any)
		if !ok {
			return vellum.Node{}, fmt.Errorf("%w: children wants a sequence, got %T", ErrDecode, raw)
		}
		var err error
		kids, err = nodes(seq)
		if err != nil {
			return vellum.Node{}, err
		}
	}
	if kids == nil {
		return vellum.ClosedElement(tag, attrs), nil
	}
	return vellum.Element(tag, attrs, kids), nil
}

// scalar renders YAML scalars to attribute or content strings.
func scalar(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("not a scalar: %T", v)
	}
}

func has(fields map[string]any, key string) bool {
	_, ok := fields[key]
	return ok
}
