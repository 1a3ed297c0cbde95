package vellum

// Walk visits every node in the subtree rooted at n in pre-order: n first,
// then each child's subtree left to right. Fragments are visited like any
// other node. The visit order over an unmodified tree is deterministic.
func (n Node) Walk(visit func(Node)) {
	visit(n)
	for _, c := range n.ChildNodes() {
		c.Walk(visit)
	}
}

// WalkDepth is Walk with the 1-based depth of each node passed alongside
// it. The root is at depth 1.
func (n Node) WalkDepth(visit func(Node, int)) {
	n.walkDepth(visit, 1)
}

func (n Node) walkDepth(visit func(Node, int), depth int) {
	visit(n, depth)
	for _, c := range n.ChildNodes() {
		c.walkDepth(visit, depth+1)
	}
}

// Find returns the first node in pre-order satisfying pred.
func (n Node) Find(pred func(Node) bool) (Node, bool) {
	if pred(n) {
		return n, true
	}
	for _, c := range n.ChildNodes() {
		if res, ok := c.Find(pred); ok {
			return res, true
		}
	}
	return Node{}, false
}

// FindAll returns every node in pre-order satisfying pred. The result
// slice is freshly allocated and owned by the caller; a tree with no
// matches yields nil.
func (n Node) FindAll(pred func(Node) bool) []Node {
	var res []Node
	n.Walk(func(m Node) {
		if pred(m) {
			res = append(res, m)
		}
	})
	return res
}

// FindByTag returns the first element in pre-order with the given tag.
func (n Node) FindByTag(tag string) (Node, bool) {
	return n.Find(func(m Node) bool { return m.HasTag(tag) })
}
