package present

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thiagokokada/git-graph-go/internal/git"
)

func node(hash string, parents ...string) git.CommitNode {
	return git.CommitNode{Hash: hash, Parents: parents}
}

func TestGraphLanes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		nodes []git.CommitNode
		want  []string
	}{
		{
			name:  "linear",
			nodes: []git.CommitNode{node("c", "b"), node("b", "a"), node("a")},
			want:  []string{"*", "*", "*"},
		},
		{
			name:  "merge",
			nodes: []git.CommitNode{node("m", "a", "b"), node("b", "a"), node("a")},
			want:  []string{"*", "| *", "*"},
		},
		{
			name:  "two_tips",
			nodes: []git.CommitNode{node("x", "a"), node("y", "a"), node("a")},
			want:  []string{"*", "* |", "*"},
		},
		{
			name:  "uncommitted_and_stash",
			nodes: []git.CommitNode{node(git.UncommittedHash, "h"), node("s", "h"), node("h", "p"), node("p")},
			want:  []string{"*", "* |", "*", "*"},
		},
		{
			name: "empty",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, GraphLanes(tt.nodes))
		})
	}
}
