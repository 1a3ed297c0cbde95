// Package dump writes human-readable tree dumps for debugging and golden
// tests. The output is deterministic: one node per line, children indented
// under their parent, fragments shown explicitly.
package dump

import (
	"io"
	"strconv"
	"strings"

	vellum "github.com/vellum-format/go-vellum"
)

type dumpState struct {
	indent int
	colors *Colors
	auto   bool

	w   io.Writer
	err error
}

// Dump writes the tree rooted at n to w, one node per line. Unlike render
// dispatch, fragments are shown: a dump is about the tree as built, not
// the tree as rendered.
func Dump(w io.Writer, n vellum.Node, opts ...Option) error {
	ds := &dumpState{
		indent: 2,
		w:      w,
	}
	for _, opt := range opts {
		opt(ds)
	}
	if ds.auto && ds.colors == nil && isTerminal(w) {
		ds.colors = NewColors()
	}
	n.WalkDepth(func(m vellum.Node, depth int) {
		ds.line(m, depth)
	})
	return ds.err
}

// String dumps n into a string, without color.
func String(n vellum.Node, opts ...Option) string {
	sb := &strings.Builder{}
	_ = Dump(sb, n, opts...) // strings.Builder does not fail
	return sb.String()
}

func (ds *dumpState) line(n vellum.Node, depth int) {
	if ds.err != nil {
		return
	}
	ds.write(strings.Repeat(" ", ds.indent*(depth-1)))
	switch n.Kind {
	case vellum.ElementKind:
		ds.element(n)
	case vellum.TextKind:
		ds.color(n.Kind, ContentColor, strconv.Quote(n.Content))
	case vellum.RawKind:
		ds.color(n.Kind, MarkerColor, "raw ")
		ds.color(n.Kind, ContentColor, strconv.Quote(n.Content))
	case vellum.FragmentKind:
		ds.color(n.Kind, MarkerColor, "#fragment")
	default:
		panic("kind")
	}
	ds.write("\n")
}

func (ds *dumpState) element(n vellum.Node) {
	ds.color(n.Kind, MarkerColor, "<")
	ds.color(n.Kind, TagColor, n.Tag)
	for _, a := range n.Attrs {
		ds.write(" ")
		ds.color(n.Kind, AttrKeyColor, a.Key)
		if a.Val == nil {
			continue
		}
		ds.color(n.Kind, MarkerColor, "=")
		ds.color(n.Kind, AttrValColor, strconv.Quote(*a.Val))
	}
	if len(n.Children) == 0 {
		ds.color(n.Kind, MarkerColor, "/>")
		return
	}
	ds.color(n.Kind, MarkerColor, ">")
}

func (ds *dumpState) color(k vellum.Kind, attr ColorAttr, s string) {
	if ds.colors != nil {
		s = ds.colors.Color(k, attr, s)
	}
	ds.write(s)
}

func (ds *dumpState) write(s string) {
	if ds.err != nil {
		return
	}
	_, ds.err = ds.w.Write([]byte(s))
}
