// Package treediff computes structural diffs between two markup trees.
//
// A diff is an ordered edit script over tree paths. Children are aligned
// by index; text and raw content changes carry character-level hunks so a
// reviewer sees what changed inside long runs of content, not just that
// something did.
package treediff

import (
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	vellum "github.com/vellum-format/go-vellum"
	"github.com/vellum-format/go-vellum/debug"
)

type Op int

const (
	// Insert adds the To subtree at Path.
	Insert Op = iota
	// Delete removes the From subtree at Path.
	Delete
	// Replace swaps the From subtree for the To subtree at Path.
	Replace
	// EditText rewrites text or raw content in place; Hunks carries the
	// character-level changes.
	EditText
	// SetAttrs rewrites an element's attribute sequence in place.
	SetAttrs
)

func (o Op) String() string {
	s, ok := map[Op]string{
		Insert:   "insert",
		Delete:   "delete",
		Replace:  "replace",
		EditText: "edit-text",
		SetAttrs: "set-attrs",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}

// Edit is one step of an edit script. Path addresses a node by child
// indexes from the root: "$" is the root, "$[0][2]" the third child of the
// root's first child. Fragments occupy positions like any other node.
type Edit struct {
	Path string
	Op   Op
	From vellum.Node
	To   vellum.Node

	// Hunks is populated for EditText only.
	Hunks []diffpatch.Diff
}

// Diff returns the edit script turning from into to. Equal trees yield nil.
func Diff(from, to vellum.Node) []Edit {
	edits := diff(nil, "$", from, to)
	if debug.Diff() {
		debug.LogAny(map[string]any{"edits": len(edits)})
	}
	return edits
}

func diff(edits []Edit, path string, from, to vellum.Node) []Edit {
	if from.Kind != to.Kind {
		return append(edits, Edit{Path: path, Op: Replace, From: from, To: to})
	}
	switch from.Kind {
	case vellum.TextKind, vellum.RawKind:
		if from.Content == to.Content {
			return edits
		}
		return append(edits, Edit{
			Path:  path,
			Op:    EditText,
			From:  from,
			To:    to,
			Hunks: contentHunks(from.Content, to.Content),
		})
	case vellum.ElementKind:
		if from.Tag != to.Tag {
			return append(edits, Edit{Path: path, Op: Replace, From: from, To: to})
		}
		if !attrsEqual(from.Attrs, to.Attrs) {
			edits = append(edits, Edit{Path: path, Op: SetAttrs, From: from, To: to})
		}
		return diffChildren(edits, path, from.Children, to.Children)
	case vellum.FragmentKind:
		return diffChildren(edits, path, from.Children, to.Children)
	default:
		panic("kind")
	}
}

func diffChildren(edits []Edit, path string, from, to []vellum.Node) []Edit {
	n := min(len(from), len(to))
	for i := 0; i < n; i++ {
		edits = diff(edits, childPath(path, i), from[i], to[i])
	}
	for i := n; i < len(from); i++ {
		edits = append(edits, Edit{Path: childPath(path, i), Op: Delete, From: from[i]})
	}
	for i := n; i < len(to); i++ {
		edits = append(edits, Edit{Path: childPath(path, i), Op: Insert, To: to[i]})
	}
	return edits
}

func childPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func contentHunks(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	return diffCfg.DiffMain(from, to, doMultiLine)
}

func attrsEqual(a, b []vellum.Attr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			return false
		}
		switch {
		case a[i].Val == nil && b[i].Val == nil:
		case a[i].Val == nil || b[i].Val == nil:
			return false
		case *a[i].Val != *b[i].Val:
			return false
		}
	}
	return true
}
