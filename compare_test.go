package vellum

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Node
		expected int
	}{
		// Kind ranking: Text < Raw < Fragment < Element
		{"Text < Raw", Text("z"), Raw("a"), -1},
		{"Raw < Fragment", Raw("z"), None(), -1},
		{"Fragment < Element", None(), ClosedElement("", nil), -1},

		// Content comparison
		{"text content", Text("a"), Text("b"), -1},
		{"equal text", Text("a"), Text("a"), 0},
		{"raw content", Raw("b"), Raw("a"), 1},

		// Elements: tag, then attrs, then children
		{"tag", ClosedElement("a", nil), ClosedElement("b", nil), -1},
		{"attr key", ClosedElement("a", []Attr{NewAttr("id", "x")}),
			ClosedElement("a", []Attr{NewAttr("if", "x")}), -1},
		{"boolean attr < valued attr", ClosedElement("a", []Attr{NewAttr("id")}),
			ClosedElement("a", []Attr{NewAttr("id", "")}), -1},
		{"attr count", ClosedElement("a", nil),
			ClosedElement("a", []Attr{NewAttr("id")}), -1},
		{"children", Element("a", nil, []Node{Text("x")}),
			Element("a", nil, []Node{Text("y")}), -1},
		{"child count", Element("a", nil, []Node{Text("x")}),
			Element("a", nil, []Node{Text("x"), Text("y")}), -1},

		// Fragments compare by children
		{"fragments", Fragment([]Node{Text("a")}), Fragment([]Node{Text("b")}), -1},
		{"equal trees", card(), card(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare = %d, want %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("reversed Compare = %d, want %d", got, -tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal(card(), card()) {
		t.Error("identical trees not Equal")
	}
	if Equal(card(), None()) {
		t.Error("different trees Equal")
	}
}
