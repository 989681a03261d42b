// Package codegen renders program-representation trees into Python source
// text. Dispatch is a table from node kind to formatting rule: every kind
// maps to exactly one rule, and adding a kind means adding one entry, not
// touching the dispatch core.
package codegen

import (
	"fmt"
	"strings"

	"astgen/internal/ast"
)

// defaultIndent is one level of block nesting: 4 spaces.
const defaultIndent = "    "

// Rule formats one node kind. Rules receive the per-invocation Renderer so
// they can recurse into children and read the current indentation.
type Rule func(r *Renderer, node ast.Node) (string, error)

// Generator holds the rule catalog. A Generator is immutable during
// rendering and safe for concurrent Render calls; all mutable state lives
// in the per-invocation Renderer.
type Generator struct {
	rules     map[ast.Kind]Rule
	indentStr string
}

// NewGenerator creates a Generator with the Python rule catalog installed.
func NewGenerator() *Generator {
	g := &Generator{
		rules:     make(map[ast.Kind]Rule),
		indentStr: defaultIndent,
	}
	g.installPythonRules()
	return g
}

// Register adds or replaces the rule for a node kind.
func (g *Generator) Register(kind ast.Kind, rule Rule) {
	g.rules[kind] = rule
}

// Render resolves the tree rooted at node to formatted text. Either the
// whole tree renders or an error is returned; there is no partial output.
func (g *Generator) Render(node ast.Node) (string, error) {
	r := &Renderer{gen: g}
	return r.Visit(node)
}

// Renderer carries the state of a single Render invocation. Concurrent
// Render calls never share a Renderer, so two trees may be rendered in
// parallel without coordination.
type Renderer struct {
	gen   *Generator
	depth int
}

// Visit dispatches a node to its catalog rule.
func (r *Renderer) Visit(node ast.Node) (string, error) {
	if node == nil {
		return "", &MalformedNodeError{Detail: "nil node"}
	}
	rule, ok := r.gen.rules[node.NodeKind()]
	if !ok {
		return "", &UnsupportedConstructError{Kind: node.NodeKind(), Loc: node.NodeLoc()}
	}
	return rule(r, node)
}

// Depth reports the current block nesting depth.
func (r *Renderer) Depth() int {
	return r.depth
}

// Indent returns the leading whitespace for the current depth.
func (r *Renderer) Indent() string {
	return strings.Repeat(r.gen.indentStr, r.depth)
}

// renderBlock emits a block's children, one per line, each prefixed with
// the indentation of the new nesting level. An empty block emits a single
// "pass" line because the target grammar does not permit empty blocks.
// The depth counter is restored on exit even when a child fails.
func (r *Renderer) renderBlock(b *ast.Block) (string, error) {
	r.depth++
	defer func() { r.depth-- }()

	var lines []string
	for it := b.Iter(); ; {
		node, ok := it.Next()
		if !ok {
			break
		}
		text, err := r.Visit(node)
		if err != nil {
			return "", err
		}
		lines = append(lines, r.Indent()+text)
	}

	if len(lines) == 0 {
		return r.Indent() + "pass", nil
	}
	return strings.Join(lines, "\n"), nil
}

// rule adapts a typed formatting function into a catalog Rule. The kind tag
// and the concrete node type are one-to-one, so a mismatch means the
// catalog entry was registered against the wrong kind.
func rule[T ast.Node](fn func(r *Renderer, node T) (string, error)) Rule {
	return func(r *Renderer, node ast.Node) (string, error) {
		n, ok := node.(T)
		if !ok {
			return "", &MalformedNodeError{
				Kind:   node.NodeKind(),
				Loc:    node.NodeLoc(),
				Detail: fmt.Sprintf("rule expects a different node type, got %T", node),
			}
		}
		return fn(r, n)
	}
}

// literal adapts a fixed output string into a catalog Rule, for nodes that
// always render the same text (type annotations).
func literal(text string) Rule {
	return func(*Renderer, ast.Node) (string, error) {
		return text, nil
	}
}
