package debuggraph

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	assert.Equal(t, "tmp_1", CleanName("%tmp.1"))
	assert.Equal(t, "a_b_c", CleanName("a.b%.c"))
	assert.Equal(t, "plain", CleanName("plain"))
}

func TestDirected(t *testing.T) {
	g := New("kernels", true)
	a := g.AddNode("%a.b")
	b := g.AddNode("c")
	c := g.AddNode("d")
	require.NoError(t, g.AddEdge(a, b, true, "x"))
	require.NoError(t, g.AddEdge(b, c, false, ""))
	assert.Equal(t, 3, g.Len())
	assert.True(t, g.Directed())

	out, err := g.Marshal()
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "digraph kernels {")
	assert.Contains(t, s, "[label=a_b];")
	assert.Contains(t, s, "style=dashed")
	assert.Contains(t, s, "label=x")
	assert.Contains(t, s, " -> ")
	assert.NotContains(t, s, " -- ")
}

func TestUndirected(t *testing.T) {
	g := New("deps", false)
	a := g.AddNode("a")
	b := g.AddNode("b")
	require.NoError(t, g.AddEdge(a, b, false, ""))

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Contains(t, buf.String(), "graph deps {")
	assert.NotContains(t, buf.String(), "digraph")
	assert.Contains(t, buf.String(), " -- ")
	assert.NotContains(t, buf.String(), "dashed")
}

func TestAddEdgeErrors(t *testing.T) {
	g := New("g", true)
	a := g.AddNode("a")
	assert.Error(t, g.AddEdge(a, a, false, ""), "self edge")
	assert.Error(t, g.AddEdge(a, 42, false, ""), "unknown target")
	assert.Error(t, g.AddEdge(42, a, false, ""), "unknown source")
}
