package treediff

import (
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"

	vellum "github.com/vellum-format/go-vellum"
)

func page(title string) vellum.Node {
	return vellum.Element("article", nil, []vellum.Node{
		vellum.Element("h1", nil, []vellum.Node{vellum.Text(title)}),
		vellum.Fragment([]vellum.Node{
			vellum.Text("intro"),
			vellum.ClosedElement("hr", nil),
		}),
	})
}

func TestDiffEqualTrees(t *testing.T) {
	require.Nil(t, Diff(page("x"), page("x")))
}

func TestDiffAgreesWithEqual(t *testing.T) {
	cases := [][2]vellum.Node{
		{page("a"), page("a")},
		{page("a"), page("b")},
		{vellum.None(), vellum.None()},
		{vellum.Text("x"), vellum.Raw("x")},
	}
	for i, c := range cases {
		edits := Diff(c[0], c[1])
		require.Equal(t, vellum.Equal(c[0], c[1]), len(edits) == 0, "case %d", i)
	}
}

func TestDiffTextHunks(t *testing.T) {
	edits := Diff(page("Good Morning"), page("Good Evening"))
	require.Len(t, edits, 1)
	e := edits[0]
	require.Equal(t, EditText, e.Op)
	require.Equal(t, "$[0][0]", e.Path)
	require.Equal(t, "Good Morning", e.From.Content)
	require.NotEmpty(t, e.Hunks)

	// hunks reassemble into the target content
	var to string
	for _, h := range e.Hunks {
		if h.Type != diffpatch.DiffDelete {
			to += h.Text
		}
	}
	require.Equal(t, "Good Evening", to)
}

func TestDiffKindChange(t *testing.T) {
	edits := Diff(vellum.Text("x"), vellum.Raw("x"))
	require.Len(t, edits, 1)
	require.Equal(t, Replace, edits[0].Op)
	require.Equal(t, "$", edits[0].Path)
}

func TestDiffTagChange(t *testing.T) {
	edits := Diff(vellum.ClosedElement("b", nil), vellum.ClosedElement("strong", nil))
	require.Len(t, edits, 1)
	require.Equal(t, Replace, edits[0].Op)
}

func TestDiffAttrs(t *testing.T) {
	from := vellum.ClosedElement("a", []vellum.Attr{vellum.NewAttr("href", "/old")})
	to := vellum.ClosedElement("a", []vellum.Attr{vellum.NewAttr("href", "/new")})
	edits := Diff(from, to)
	require.Len(t, edits, 1)
	require.Equal(t, SetAttrs, edits[0].Op)
	v, ok := edits[0].To.GetAttr("href")
	require.True(t, ok)
	require.Equal(t, "/new", v)

	// boolean vs valued attribute is a change
	from = vellum.ClosedElement("input", []vellum.Attr{vellum.NewAttr("checked")})
	to = vellum.ClosedElement("input", []vellum.Attr{vellum.NewAttr("checked", "")})
	require.Len(t, Diff(from, to), 1)
}

func TestDiffChildrenTail(t *testing.T) {
	from := vellum.Fragment([]vellum.Node{vellum.Text("a")})
	to := vellum.Fragment([]vellum.Node{vellum.Text("a"), vellum.Text("b"), vellum.Text("c")})

	edits := Diff(from, to)
	require.Len(t, edits, 2)
	require.Equal(t, Insert, edits[0].Op)
	require.Equal(t, "$[1]", edits[0].Path)
	require.Equal(t, Insert, edits[1].Op)
	require.Equal(t, "$[2]", edits[1].Path)

	// and the reverse direction deletes
	edits = Diff(to, from)
	require.Len(t, edits, 2)
	require.Equal(t, Delete, edits[0].Op)
	require.Equal(t, "b", edits[0].From.Content)
}

func TestOpString(t *testing.T) {
	require.Equal(t, "edit-text", EditText.String())
	require.Equal(t, "<unknown op>", Op(99).String())
}
