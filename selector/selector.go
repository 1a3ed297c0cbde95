// Package selector compiles boolean expressions over nodes into reusable
// predicates for traversal.
//
// Expressions see one node at a time through a fixed environment:
//
//	Kind == "Element" && Tag == "a" && Attrs["href"] != ""
//	Kind == "Text" && Content contains "TODO"
//	"checked" in Attrs
//
// Expressions use the expr language, see https://expr-lang.org.
package selector

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	vellum "github.com/vellum-format/go-vellum"
	"github.com/vellum-format/go-vellum/debug"
)

var (
	ErrCompile = errors.New("selector compile error")
	ErrEval    = errors.New("selector eval error")
)

// Env is the expression environment built from one node. Attrs maps each
// attribute key to its value, first occurrence winning for duplicates;
// boolean attributes map to "". Use `key in Attrs` to test presence.
type Env struct {
	Kind        string
	Tag         string
	Content     string
	Attrs       map[string]string
	NumChildren int
}

type Selector struct {
	src string
	prg *vm.Program
}

// Compile builds a selector from src. The expression must yield a boolean.
func Compile(src string) (*Selector, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	if debug.Selector() {
		debug.LogAny(map[string]any{"selector": src})
	}
	return &Selector{src: src, prg: prg}, nil
}

// String returns the source the selector was compiled from.
func (s *Selector) String() string {
	return s.src
}

// Match evaluates the selector against one node.
func (s *Selector) Match(n vellum.Node) (bool, error) {
	out, err := expr.Run(s.prg, envOf(n))
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrEval, s.src, err)
	}
	return out.(bool), nil
}

// Find returns the first node in pre-order matched by the expression.
func Find(n vellum.Node, src string) (vellum.Node, bool, error) {
	sel, err := Compile(src)
	if err != nil {
		return vellum.Node{}, false, err
	}
	return sel.Find(n)
}

// FindAll returns every node in pre-order matched by the expression.
func FindAll(n vellum.Node, src string) ([]vellum.Node, error) {
	sel, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return sel.FindAll(n)
}

// Find returns the first node in pre-order matched by s.
func (s *Selector) Find(n vellum.Node) (vellum.Node, bool, error) {
	ok, err := s.Match(n)
	if err != nil {
		return vellum.Node{}, false, err
	}
	if ok {
		return n, true, nil
	}
	for _, c := range n.ChildNodes() {
		if res, found, err := s.Find(c); err != nil || found {
			return res, found, err
		}
	}
	return vellum.Node{}, false, nil
}

// FindAll returns every node in pre-order matched by s.
func (s *Selector) FindAll(n vellum.Node) ([]vellum.Node, error) {
	ok, err := s.Match(n)
	if err != nil {
		return nil, err
	}
	var res []vellum.Node
	if ok {
		res = append(res, n)
	}
	for _, c := range n.ChildNodes() {
		sub, err := s.FindAll(c)
		if err != nil {
			return nil, err
		}
		res = append(res, sub...)
	}
	return res, nil
}

func envOf(n vellum.Node) Env {
	env := Env{
		Kind:        n.Kind.String(),
		Tag:         n.Tag,
		Content:     n.Content,
		Attrs:       map[string]string{},
		NumChildren: len(n.ChildNodes()),
	}
	for _, a := range n.Attrs {
		if _, ok := env.Attrs[a.Key]; ok {
			continue
		}
		if a.Val == nil {
			env.Attrs[a.Key] = ""
			continue
		}
		env.Attrs[a.Key] = *a.Val
	}
	return env
}
