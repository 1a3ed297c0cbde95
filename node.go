package vellum

import "fmt"

type Kind int

const (
	ElementKind Kind = iota
	TextKind
	RawKind
	FragmentKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ElementKind:  "Element",
		TextKind:     "Text",
		RawKind:      "Raw",
		FragmentKind: "Fragment",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Element":  ElementKind,
		"Text":     TextKind,
		"Raw":      RawKind,
		"Fragment": FragmentKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ElementKind,
		TextKind,
		RawKind,
		FragmentKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ElementKind, FragmentKind:
		return false
	default:
		return true
	}
}

// Node is one value of the closed four-kind variant. Which fields are
// meaningful depends on Kind:
//
//   - ElementKind: Tag, Attrs, Children
//   - TextKind, RawKind: Content
//   - FragmentKind: Children
//
// Nodes are values; copying a Node copies slice headers only, so the
// backing arrays of Attrs and Children are shared. Nothing in this package
// ever writes through those arrays after construction.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Content  string
	Children []Node
}

// Attr is one attribute record. A nil Val denotes a boolean attribute,
// present with no value, which is distinct from the attribute being absent.
// Duplicate keys are allowed and preserved in order.
type Attr struct {
	Key string
	Val *string
}

// NewAttr builds an attribute record. With no value argument the attribute
// is boolean. Extra value arguments beyond the first are ignored.
func NewAttr(key string, val ...string) Attr {
	if len(val) == 0 {
		return Attr{Key: key}
	}
	return Attr{Key: key, Val: &val[0]}
}

// Element builds an element node over the given attribute and children
// sequences. The slices are used as given, not copied: they must remain
// valid for as long as any Node derived from the result is reachable.
func Element(tag string, attrs []Attr, children []Node) Node {
	return Node{
		Kind:     ElementKind,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

// ClosedElement builds an element with no children.
func ClosedElement(tag string, attrs []Attr) Node {
	return Node{
		Kind:  ElementKind,
		Tag:   tag,
		Attrs: attrs,
	}
}

// Text builds a text node. Renderers must escape its content.
func Text(content string) Node {
	return Node{Kind: TextKind, Content: content}
}

// Raw builds a raw node. Renderers must pass its content through verbatim.
func Raw(content string) Node {
	return Node{Kind: RawKind, Content: content}
}

// Fragment groups children under a node with no rendered identity.
// The slice is used as given, not copied.
func Fragment(children []Node) Node {
	return Node{Kind: FragmentKind, Children: children}
}

// None returns an empty fragment, a structurally valid "nothing" for
// positions that require a Node, such as an empty conditional branch.
func None() Node {
	return Node{Kind: FragmentKind}
}
