package vellum

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Kinds rank Text < Raw < Fragment < Element; nodes of equal kind compare
// by content, then tag, then attributes, then children.
func Compare(a, b Node) int {
	rankA := rank(a.Kind)
	rankB := rank(b.Kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind {
	case TextKind, RawKind:
		return strings.Compare(a.Content, b.Content)
	case FragmentKind:
		return compareChildren(a, b)
	case ElementKind:
		if c := strings.Compare(a.Tag, b.Tag); c != 0 {
			return c
		}
		if c := compareAttrs(a.Attrs, b.Attrs); c != 0 {
			return c
		}
		return compareChildren(a, b)
	}
	return 0
}

// Equal reports structural equality of two trees.
func Equal(a, b Node) bool {
	return Compare(a, b) == 0
}

func rank(k Kind) int {
	switch k {
	case TextKind:
		return 0
	case RawKind:
		return 1
	case FragmentKind:
		return 2
	case ElementKind:
		return 3
	}
	return 100
}

func compareAttrs(a, b []Attr) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		// boolean attributes rank below valued ones
		switch {
		case a[i].Val == nil && b[i].Val == nil:
		case a[i].Val == nil:
			return -1
		case b[i].Val == nil:
			return 1
		default:
			if c := strings.Compare(*a[i].Val, *b[i].Val); c != 0 {
				return c
			}
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareChildren(a, b Node) int {
	lenA := len(a.Children)
	lenB := len(b.Children)
	minLen := min(lenA, lenB)
	for i := 0; i < minLen; i++ {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
