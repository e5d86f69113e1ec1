package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRefs(t *testing.T) {
	t.Parallel()

	out := "" +
		"1111111111111111111111111111111111111111 HEAD\n" +
		"1111111111111111111111111111111111111111 refs/heads/main\n" +
		"2222222222222222222222222222222222222222 refs/heads/feature/x\n" +
		"3333333333333333333333333333333333333333 refs/remotes/origin/main\n" +
		"3333333333333333333333333333333333333333 refs/remotes/origin/HEAD -> origin/main\n" +
		"4444444444444444444444444444444444444444 refs/tags/v1.0.0\n" +
		"5555555555555555555555555555555555555555 refs/tags/v1.1.0\n" +
		"6666666666666666666666666666666666666666 refs/tags/v1.1.0^{}\n" +
		"7777777777777777777777777777777777777777 refs/stash\n" +
		"\n" +
		"garbage\n"

	got := ParseRefs(out)
	assert.Equal(t, "1111111111111111111111111111111111111111", got.Head)
	assert.Equal(t, []Ref{
		{Hash: "1111111111111111111111111111111111111111", Name: "main", Kind: RefKindHead},
		{Hash: "2222222222222222222222222222222222222222", Name: "feature/x", Kind: RefKindHead},
		{Hash: "3333333333333333333333333333333333333333", Name: "origin/main", Kind: RefKindRemote},
		{Hash: "3333333333333333333333333333333333333333", Name: "origin/HEAD", Kind: RefKindRemote},
		{Hash: "4444444444444444444444444444444444444444", Name: "v1.0.0", Kind: RefKindTag},
		{Hash: "6666666666666666666666666666666666666666", Name: "v1.1.0", Kind: RefKindTag, Annotated: true},
	}, got.Refs)
}

func TestParseRefs_PeeledBeforeTagObject(t *testing.T) {
	t.Parallel()

	got := ParseRefs("" +
		"bbbbbbbb refs/tags/v2^{}\n" +
		"aaaaaaaa refs/tags/v2\n")
	require.Len(t, got.Refs, 1)
	assert.Equal(t, Ref{Hash: "bbbbbbbb", Name: "v2", Kind: RefKindTag, Annotated: true}, got.Refs[0])
}

func TestParseRefs_Empty(t *testing.T) {
	t.Parallel()

	got := ParseRefs("")
	assert.Empty(t, got.Head)
	assert.NotNil(t, got.Refs)
	assert.Empty(t, got.Refs)
}

func TestRefArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"show-ref", "-d", "--head"}, RefArgs(true))
	assert.Equal(t, []string{"show-ref", "--heads", "--tags", "-d", "--head"}, RefArgs(false))
}

func TestParseBranches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want BranchData
	}{
		{
			name: "on_branch",
			in:   "  feature\n* main\n  remotes/origin/HEAD -> origin/main\n  remotes/origin/main\n",
			want: BranchData{
				Branches: []string{"feature", "main", "remotes/origin/HEAD", "remotes/origin/main"},
				Head:     "main",
			},
		},
		{
			name: "detached",
			in:   "* (HEAD detached at 1a2b3c4)\n  main\n",
			want: BranchData{Branches: []string{"main"}},
		},
		{
			name: "rebasing",
			in:   "* (no branch, rebasing main)\n  main\n",
			want: BranchData{Branches: []string{"main"}},
		},
		{
			name: "empty",
			in:   "",
			want: BranchData{Branches: []string{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ParseBranches(tt.in))
		})
	}
}
