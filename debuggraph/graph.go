// Package debuggraph renders small labelled graphs as GraphViz DOT for debugging.
package debuggraph

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

type builder interface {
	graph.Graph
	graph.Builder
}

// Graph is a directed or undirected graph of labelled nodes
type Graph struct {
	name     string
	directed bool
	g        builder
}

// New creates an empty graph. The name becomes the DOT graph ID.
func New(name string, directed bool) *Graph {
	var g builder
	if directed {
		g = simple.NewDirectedGraph()
	} else {
		g = simple.NewUndirectedGraph()
	}
	return &Graph{name: CleanName(name), directed: directed, g: g}
}

// Directed reports whether edges are rendered with ->
func (gr *Graph) Directed() bool { return gr.directed }

// AddNode adds a node and returns its ID
func (gr *Graph) AddNode(label string) int64 {
	id := gr.g.NewNode().ID()
	gr.g.AddNode(node{id: id, label: label})
	return id
}

// AddEdge connects two existing nodes. Weak edges are drawn dashed.
func (gr *Graph) AddEdge(from, to int64, weak bool, label string) error {
	if from == to {
		return fmt.Errorf("debuggraph: self edge on node %d", from)
	}
	f, ok := gr.g.Node(from).(node)
	if !ok {
		return fmt.Errorf("debuggraph: unknown node %d", from)
	}
	t, ok := gr.g.Node(to).(node)
	if !ok {
		return fmt.Errorf("debuggraph: unknown node %d", to)
	}
	gr.g.SetEdge(edge{from: f, to: t, weak: weak, label: label})
	return nil
}

// Len returns the number of nodes
func (gr *Graph) Len() int {
	return gr.g.Nodes().Len()
}

// Marshal renders the graph as DOT
func (gr *Graph) Marshal() ([]byte, error) {
	return dot.Marshal(gr.g, gr.name, "", "\t")
}

// WriteTo writes the DOT rendering to w
func (gr *Graph) WriteTo(w io.Writer) (int64, error) {
	b, err := gr.Marshal()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

// CleanName strips '%' and replaces '.' with '_' so names are usable as DOT labels
func CleanName(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, "%", ""), ".", "_")
}

type node struct {
	id    int64
	label string
}

func (n node) ID() int64 { return n.id }

func (n node) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: CleanName(n.label)}}
}

type edge struct {
	from, to node
	weak     bool
	label    string
}

func (e edge) From() graph.Node { return e.from }
func (e edge) To() graph.Node   { return e.to }

func (e edge) ReversedEdge() graph.Edge {
	e.from, e.to = e.to, e.from
	return e
}

func (e edge) Attributes() []encoding.Attribute {
	var attrs []encoding.Attribute
	if e.weak {
		attrs = append(attrs, encoding.Attribute{Key: "style", Value: "dashed"})
	}
	if e.label != "" {
		attrs = append(attrs, encoding.Attribute{Key: "label", Value: e.label})
	}
	return attrs
}
