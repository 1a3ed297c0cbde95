package vellum

// IsEmpty reports whether the node carries no content at all: a zero-length
// text node, a childless fragment, or a childless element with an empty tag.
// Raw nodes are never empty, even with zero-length content, because a
// renderer may still act on them.
func (n Node) IsEmpty() bool {
	switch n.Kind {
	case TextKind:
		return n.Content == ""
	case FragmentKind:
		return len(n.Children) == 0
	case ElementKind:
		return n.Tag == "" && len(n.Children) == 0
	default:
		return false
	}
}

// CountNodes returns the size of the subtree rooted at n, counting n
// itself. Fragments count as one node here, although they render as none.
// Attribute records are not nodes and never contribute to the count.
func (n Node) CountNodes() int {
	count := 1
	for _, c := range n.ChildNodes() {
		count += c.CountNodes()
	}
	return count
}

// Depth returns the length of the longest root-to-leaf path. A leaf has
// depth 1.
func (n Node) Depth() int {
	max := 0
	for _, c := range n.ChildNodes() {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

// ChildNodes returns the direct children of n. Text and raw nodes yield
// nil regardless of what a hand-built Node value carries in Children.
func (n Node) ChildNodes() []Node {
	switch n.Kind {
	case ElementKind, FragmentKind:
		return n.Children
	default:
		return nil
	}
}

// HasTag reports whether n is an element with exactly the given tag.
func (n Node) HasTag(tag string) bool {
	return n.Kind == ElementKind && n.Tag == tag
}

// GetAttr returns the value of the first attribute with the given key.
// A boolean attribute yields ("", true); an absent key, or a node that is
// not an element, yields ("", false).
func (n Node) GetAttr(key string) (string, bool) {
	if n.Kind != ElementKind {
		return "", false
	}
	for i := range n.Attrs {
		if n.Attrs[i].Key != key {
			continue
		}
		if n.Attrs[i].Val == nil {
			return "", true
		}
		return *n.Attrs[i].Val, true
	}
	return "", false
}
