// Package vellum provides a format-agnostic representation of hierarchical
// markup documents as a tree of nodes.
//
// # Overview
//
// A document is a tree of [Node] values. The tree commits to no output
// format: HTML, Markdown, JSON and any other renderings are produced by
// external format modules that consume the tree through the [Visitor]
// interface. The package supplies construction, inspection, traversal,
// immutable transformation, and the render dispatch that drives a visitor.
//
// # Node Kinds
//
// The Kind field places every node in a closed set of four kinds:
//
//   - ElementKind: a tag plus ordered attributes and ordered children
//   - TextKind: opaque content a renderer must escape
//   - RawKind: opaque content a renderer must pass through unescaped
//   - FragmentKind: an ordered group with no identity of its own
//
// There is no fifth kind. Code consuming nodes switches exhaustively over
// the four kinds; encountering anything else is a programming error and
// panics rather than returning an error.
//
// # Creating Nodes
//
// Use the constructor functions:
//
//	card := vellum.Element("div",
//		[]vellum.Attr{vellum.NewAttr("class", "card")},
//		[]vellum.Node{
//			vellum.Text("hi"),
//			vellum.ClosedElement("hr", nil),
//		})
//
// Constructors never allocate and never copy: attribute and children slices
// are used exactly as given, so the backing arrays must stay alive for as
// long as any derived Node is reachable. Trees built from constant arguments
// can live entirely in static data.
//
// # Immutability
//
// Nodes are value types and trees are never mutated in place. The transform
// functions ([Map], [Filter], [Append], [Prepend], [SetAttr], [RemoveAttr])
// build fresh trees and leave their inputs untouched; unmodified subtrees
// may be shared between input and output. Because nothing mutates a built
// tree, concurrent reads are safe without synchronization.
//
// # Rendering
//
// [RenderWalk] performs one pre-order traversal of a tree and drives a
// [Visitor] through four callback points. Fragments are transparent to
// rendering: their children are visited with no callback for the fragment
// itself. A callback error aborts the traversal immediately.
//
// # Related Packages
//
//   - github.com/vellum-format/go-vellum/selector - expression predicates over nodes
//   - github.com/vellum-format/go-vellum/dump - human-readable tree dumps
//   - github.com/vellum-format/go-vellum/treediff - structural diffs between trees
//   - github.com/vellum-format/go-vellum/treeyaml - YAML tree fixtures
package vellum
