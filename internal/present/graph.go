// Package present renders git service results for a terminal.
package present

import (
	"slices"
	"strings"

	"github.com/thiagokokada/git-graph-go/internal/git"
)

// GraphLanes returns one lane prefix per node, e.g. "* |" for a node in the
// first of two open lanes. Nodes must be in display order.
func GraphLanes(nodes []git.CommitNode) []string {
	builder := newGraphBuilder()
	lines := make([]string, len(nodes))
	for i, n := range nodes {
		lines[i] = builder.Line(n.Hash, n.Parents)
	}
	return lines
}

type graphBuilder struct {
	columns []string
}

func newGraphBuilder() *graphBuilder {
	return &graphBuilder{}
}

func (g *graphBuilder) Line(hash string, parents []string) string {
	idx := slices.Index(g.columns, hash)
	if idx == -1 {
		g.columns = slices.Insert(g.columns, 0, hash)
		idx = 0
	}
	var b strings.Builder
	for i := range g.columns {
		if i == idx {
			b.WriteString("*")
		} else {
			b.WriteString("|")
		}
		if i != len(g.columns)-1 {
			b.WriteString(" ")
		}
	}
	g.advance(idx, parents)
	return b.String()
}

func (g *graphBuilder) advance(idx int, parents []string) {
	if len(parents) == 0 {
		g.columns = slices.Delete(g.columns, idx, idx+1)
		return
	}
	primary := parents[0]
	if j := slices.Index(g.columns, primary); j >= 0 && j != idx {
		// Another lane already waits for the first parent; this one joins it.
		g.columns = slices.Delete(g.columns, idx, idx+1)
		if j > idx {
			j--
		}
		idx = j
	} else {
		g.columns[idx] = primary
	}
	for i := 1; i < len(parents); i++ {
		parent := parents[i]
		if slices.Contains(g.columns, parent) {
			continue
		}
		pos := min(idx+i, len(g.columns))
		g.columns = slices.Insert(g.columns, pos, parent)
	}
}
