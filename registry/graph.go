package registry

import (
	"fmt"

	"github.com/notargets/emucheck/debuggraph"
	"github.com/notargets/emucheck/encode"
	"github.com/notargets/emucheck/kernel"
	"github.com/notargets/emucheck/verify"
)

// Graph links every kernel source file to the entry points tested from it and
// every entry point to its parameters. Edges to parameters that are only read
// are weak; edges to verified outputs are labelled with their element type.
func (r *Registry) Graph() (*debuggraph.Graph, error) {
	g := debuggraph.New("corpus", true)
	sources := make(map[string]int64)
	for _, c := range r.cases {
		src, ok := sources[c.data.Source]
		if !ok {
			src = g.AddNode(c.data.Source)
			sources[c.data.Source] = src
		}
		label := c.data.Name
		if c.Disabled() {
			label += " (disabled)"
		}
		k := g.AddNode(label)
		if err := g.AddEdge(src, k, c.Disabled(), ""); err != nil {
			return nil, fmt.Errorf("%s: %w", c.data.Name, err)
		}
		for i, p := range c.data.Params {
			a := c.Access(i)
			n := g.AddNode(fmt.Sprintf("%d: %s", i, p))
			edgeLabel := a.String()
			if a.Has(kernel.Write) {
				edgeLabel += " " + encode.TypeName(elementType(c.mode))
			}
			if err := g.AddEdge(k, n, !a.Has(kernel.Write), edgeLabel); err != nil {
				return nil, fmt.Errorf("%s param %d: %w", c.data.Name, i, err)
			}
		}
	}
	return g, nil
}

func elementType(m verify.Mode) encode.DataType {
	if m == verify.Float {
		return encode.Float32
	}
	return encode.Int32
}
