// Package dot implements the Graphviz DOT emitter of spec.md section 4.8:
// a peripheral AST-dumping tool whose record-shape node labels and
// attribute-applicability table are, per the spec, "the only tested
// interface to the AST shape."
//
// Grounded on the teacher's token.File line-table invariants (panic-on-
// violation for programmer error, plain error for user-facing failure);
// DOT has no analogue in db47h-lex itself, so the serialization shape
// follows spec 4.8 directly rather than any one teacher file.
package dot

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/db47h/langfront/ast"
	"github.com/db47h/langfront/diag"
)

// Component names the kinds of DOT construct an attribute can attach to.
type Component uint8

const (
	CompEdge Component = 1 << iota
	CompNode
	CompGraph
	CompSubgraph
	CompClusterSubgraph
)

// attrApplicability is the per-attribute bitmask of components it may be
// set on, per spec 4.8's "attribute applicability is enforced via a
// per-attribute bitmask of valid component kinds."
var attrApplicability = map[string]Component{
	"rankdir":  CompGraph,
	"fontsize": CompGraph | CompSubgraph | CompClusterSubgraph,
	"shape":    CompNode,
	"label":    CompNode | CompEdge | CompSubgraph | CompClusterSubgraph,
	"style":    CompNode | CompEdge | CompSubgraph | CompClusterSubgraph,
	"color":    CompNode | CompEdge | CompSubgraph | CompClusterSubgraph,
}

// Attr is one name=value DOT attribute destined for a specific Component.
type Attr struct {
	Name, Value string
}

// Graph accumulates attributes and the AST to serialize.
type Graph struct {
	Name      string
	GraphAttr []Attr
	NodeAttr  []Attr
	diags     *diag.Bag
	cat       *diag.Catalog
}

// New returns a Graph named name (spec 4.9's module base filename, or
// "(anonymous source)").
func New(name string, diags *diag.Bag, cat *diag.Catalog) *Graph {
	return &Graph{Name: name, diags: diags, cat: cat}
}

// SetGraphAttr validates attr against CompGraph and records it, raising
// G002 invalid_attribute_for_component on an inapplicable attribute and
// G001 unknown_attribute on an attribute name this emitter doesn't know.
func (g *Graph) SetGraphAttr(name, value string) {
	if g.checkAttr(name, CompGraph, "graph") {
		g.GraphAttr = append(g.GraphAttr, Attr{name, value})
	}
}

// SetNodeAttr records a default node attribute (applied to every node the
// emitter writes), validated against CompNode.
func (g *Graph) SetNodeAttr(name, value string) {
	if g.checkAttr(name, CompNode, "node") {
		g.NodeAttr = append(g.NodeAttr, Attr{name, value})
	}
}

func (g *Graph) checkAttr(name string, want Component, componentName string) bool {
	mask, known := attrApplicability[name]
	if !known {
		g.diags.Errorf(g.cat, diag.GUnknownAttribute, nil, name)
		return false
	}
	if mask&want == 0 {
		g.diags.Errorf(g.cat, diag.GAttributeInapplicable, nil, name, componentName)
		return false
	}
	return true
}

// Write serializes the AST reachable from root as a digraph payload: a
// node per arena entry actually visited, record-shape labels
// "<kind>|<token_value>", and edges labeled lhs/rhs where the node kind
// distinguishes them. Traversal (and therefore emission order) is
// deterministic: a single depth-first walk in ChildRefs order.
func (g *Graph) Write(w io.Writer, arena *ast.Arena, root ast.NodeRef) error {
	bw := &errWriter{w: w}

	fmt.Fprintf(bw, "digraph %s {\n", quoteID(g.Name))
	writeAttrStmt(bw, "graph", g.GraphAttr)
	writeAttrStmt(bw, "node", append([]Attr{{"shape", "record"}}, g.NodeAttr...))

	visited := make(map[ast.NodeRef]bool)
	var walk func(ref ast.NodeRef)
	walk = func(ref ast.NodeRef) {
		if ref == ast.NilRef || visited[ref] {
			return
		}
		visited[ref] = true
		n := arena.Get(ref)
		fmt.Fprintf(bw, "  n%d [label=%s];\n", int(ref), quoteID(recordLabel(n)))
		for _, child := range n.ChildRefs() {
			label := n.EdgeLabel(child)
			if label == "" {
				fmt.Fprintf(bw, "  n%d -> n%d;\n", int(ref), int(child))
			} else {
				fmt.Fprintf(bw, "  n%d -> n%d [label=%s];\n", int(ref), int(child), quoteID(label))
			}
		}
		for _, child := range n.ChildRefs() {
			walk(child)
		}
	}
	walk(root)

	fmt.Fprint(bw, "}\n")
	return bw.err
}

func recordLabel(n *ast.Node) string {
	value := string(n.Token.Value)
	value = strings.NewReplacer("\\", "\\\\", "|", "\\|", "{", "\\{", "}", "\\}").Replace(value)
	return n.Kind.String() + "|" + value
}

func quoteID(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func writeAttrStmt(w io.Writer, stmt string, attrs []Attr) {
	if len(attrs) == 0 {
		return
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.Name + "=" + quoteID(a.Value)
	}
	fmt.Fprintf(w, "  %s [%s];\n", stmt, strings.Join(parts, ", "))
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
