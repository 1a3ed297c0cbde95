package vellum

// Visitor is the capability a renderer exposes to RenderWalk. HTML,
// Markdown and JSON producers, validators, and word counters all consume
// the tree through these four callback points; escaping and output are
// entirely the visitor's concern.
//
// Any callback error aborts the remaining traversal and propagates out of
// RenderWalk. Rolling back partially emitted output is the visitor's
// responsibility.
type Visitor interface {
	ElementOpen(tag string, attrs []Attr) error
	ElementClose(tag string) error
	Text(content string) error
	Raw(content string) error
}

// RenderWalk drives v through one depth-first pre-order traversal of the
// tree rooted at n. Elements receive matched ElementOpen/ElementClose
// callbacks around their children, a childless element included; text and
// raw nodes receive one callback each. Fragments are transparent: their
// children are visited with no callback for the fragment itself.
func RenderWalk(n Node, v Visitor) error {
	switch n.Kind {
	case ElementKind:
		if err := v.ElementOpen(n.Tag, n.Attrs); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := RenderWalk(c, v); err != nil {
				return err
			}
		}
		return v.ElementClose(n.Tag)
	case TextKind:
		return v.Text(n.Content)
	case RawKind:
		return v.Raw(n.Content)
	case FragmentKind:
		for _, c := range n.Children {
			if err := RenderWalk(c, v); err != nil {
				return err
			}
		}
		return nil
	default:
		panic("kind")
	}
}
