package vellum

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder is a Visitor that logs every callback as a printable event.
type recorder struct {
	events []string
	failOn string
}

func (r *recorder) record(ev string) error {
	if r.failOn != "" && r.failOn == ev {
		return errors.New("visitor failure at " + ev)
	}
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) ElementOpen(tag string, attrs []Attr) error {
	ev := "open(" + tag
	for _, a := range attrs {
		ev += " " + a.Key
		if a.Val != nil {
			ev += "=" + *a.Val
		}
	}
	return r.record(ev + ")")
}

func (r *recorder) ElementClose(tag string) error {
	return r.record("close(" + tag + ")")
}

func (r *recorder) Text(content string) error {
	return r.record("text(" + content + ")")
}

func (r *recorder) Raw(content string) error {
	return r.record("raw(" + content + ")")
}

func TestRenderWalkCard(t *testing.T) {
	rec := &recorder{}
	if err := RenderWalk(card(), rec); err != nil {
		t.Fatalf("RenderWalk: %v", err)
	}
	want := []string{
		"open(div class=card)",
		"text(hi)",
		"open(hr)",
		"close(hr)",
		"close(div)",
	}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("callback sequence (-want +got):\n%s", diff)
	}
}

// A fragment inside an element renders exactly like its children inlined.
func TestRenderWalkFragmentTransparent(t *testing.T) {
	withFragment := Element("p", nil, []Node{
		Fragment([]Node{Text("a"), Text("b")}),
	})
	inlined := Element("p", nil, []Node{Text("a"), Text("b")})

	recA, recB := &recorder{}, &recorder{}
	if err := RenderWalk(withFragment, recA); err != nil {
		t.Fatal(err)
	}
	if err := RenderWalk(inlined, recB); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(recB.events, recA.events); diff != "" {
		t.Errorf("fragment not transparent (-inlined +fragment):\n%s", diff)
	}
}

func TestRenderWalkChildlessElement(t *testing.T) {
	rec := &recorder{}
	if err := RenderWalk(ClosedElement("hr", nil), rec); err != nil {
		t.Fatal(err)
	}
	want := []string{"open(hr)", "close(hr)"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("childless element (-want +got):\n%s", diff)
	}
}

// Callback counts: E opens, E closes, X texts, R raws, nothing for fragments.
func TestRenderWalkCallbackCounts(t *testing.T) {
	tree := Fragment([]Node{
		card(),
		Raw("<hr>"),
		Fragment([]Node{Text("x"), None()}),
	})
	elements, texts, raws := 0, 0, 0
	tree.Walk(func(n Node) {
		switch n.Kind {
		case ElementKind:
			elements++
		case TextKind:
			texts++
		case RawKind:
			raws++
		}
	})

	rec := &recorder{}
	if err := RenderWalk(tree, rec); err != nil {
		t.Fatal(err)
	}
	opens, closes, gotTexts, gotRaws := 0, 0, 0, 0
	depth := 0
	for _, ev := range rec.events {
		switch {
		case len(ev) > 4 && ev[:5] == "open(":
			opens++
			depth++
		case len(ev) > 5 && ev[:6] == "close(":
			closes++
			depth--
			if depth < 0 {
				t.Fatalf("unbalanced close at %v", rec.events)
			}
		case len(ev) > 4 && ev[:5] == "text(":
			gotTexts++
		case len(ev) > 3 && ev[:4] == "raw(":
			gotRaws++
		}
	}
	if depth != 0 {
		t.Errorf("unmatched opens: depth %d after traversal", depth)
	}
	if opens != elements || closes != elements || gotTexts != texts || gotRaws != raws {
		t.Errorf("callbacks (open %d close %d text %d raw %d), want (%d %d %d %d)",
			opens, closes, gotTexts, gotRaws, elements, elements, texts, raws)
	}
}

func TestRenderWalkAbortsOnError(t *testing.T) {
	tree := Element("div", nil, []Node{Text("a"), Text("boom"), Text("c")})
	rec := &recorder{failOn: "text(boom)"}
	err := RenderWalk(tree, rec)
	if err == nil {
		t.Fatal("expected visitor error to propagate")
	}
	want := []string{"open(div)", "text(a)"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events before abort (-want +got):\n%s", diff)
	}
}
