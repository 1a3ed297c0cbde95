package vellum

import "fmt"

// Map rebuilds the tree rooted at n, applying fn to every node. Children
// are mapped first; fn then receives the node carrying its already-mapped
// children, so the output mirrors the input node-for-node unless fn itself
// reshapes a node. The input tree is left untouched.
func Map(n Node, fn func(Node) Node) Node {
	kids := n.ChildNodes()
	if len(kids) != 0 {
		mapped := make([]Node, len(kids))
		for i, c := range kids {
			mapped[i] = Map(c, fn)
		}
		n.Children = mapped
	}
	return fn(n)
}

// Filter rebuilds the tree rooted at n, dropping every node, and the
// subtree below it, for which pred is false. Parents are rebuilt with
// fresh, shorter children sequences; untouched leaves are shared with the
// input. A root rejected by pred yields None.
func Filter(n Node, pred func(Node) bool) Node {
	if !pred(n) {
		return None()
	}
	return filterKept(n, pred)
}

// filterKept rebuilds a node pred has already accepted.
func filterKept(n Node, pred func(Node) bool) Node {
	kids := n.ChildNodes()
	if len(kids) == 0 {
		return n
	}
	kept := make([]Node, 0, len(kids))
	for _, c := range kids {
		if !pred(c) {
			continue
		}
		kept = append(kept, filterKept(c, pred))
	}
	n.Children = kept
	return n
}

// Append returns a copy of parent with child added after its existing
// children. The parent must be an element or a fragment; anything else is
// reported as ErrNotParent. The input parent keeps its original children.
func Append(parent, child Node) (Node, error) {
	return insert(parent, child, false)
}

// Prepend is Append at the front of the children sequence.
func Prepend(parent, child Node) (Node, error) {
	return insert(parent, child, true)
}

func insert(parent, child Node, front bool) (Node, error) {
	if parent.Kind != ElementKind && parent.Kind != FragmentKind {
		return Node{}, fmt.Errorf("%w: %s", ErrNotParent, parent.Kind)
	}
	kids := make([]Node, 0, len(parent.Children)+1)
	if front {
		kids = append(kids, child)
	}
	kids = append(kids, parent.Children...)
	if !front {
		kids = append(kids, child)
	}
	parent.Children = kids
	return parent, nil
}

// SetAttr returns a copy of n with the first attribute matching key
// replaced by the given value, or with a new attribute appended when no
// key matches. Omitting the value sets a boolean attribute. Non-elements
// are reported as ErrNotElement.
func SetAttr(n Node, key string, val ...string) (Node, error) {
	if n.Kind != ElementKind {
		return Node{}, fmt.Errorf("%w: %s", ErrNotElement, n.Kind)
	}
	attr := NewAttr(key, val...)
	attrs := make([]Attr, len(n.Attrs), len(n.Attrs)+1)
	copy(attrs, n.Attrs)
	replaced := false
	for i := range attrs {
		if attrs[i].Key == key {
			attrs[i] = attr
			replaced = true
			break
		}
	}
	if !replaced {
		attrs = append(attrs, attr)
	}
	n.Attrs = attrs
	return n, nil
}

// RemoveAttr returns a copy of n without the first attribute matching key.
// When no attribute matches, the result is an equivalent fresh node.
// Non-elements are reported as ErrNotElement.
func RemoveAttr(n Node, key string) (Node, error) {
	if n.Kind != ElementKind {
		return Node{}, fmt.Errorf("%w: %s", ErrNotElement, n.Kind)
	}
	attrs := make([]Attr, 0, len(n.Attrs))
	removed := false
	for _, a := range n.Attrs {
		if !removed && a.Key == key {
			removed = true
			continue
		}
		attrs = append(attrs, a)
	}
	n.Attrs = attrs
	return n, nil
}
