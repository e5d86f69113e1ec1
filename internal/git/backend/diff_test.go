package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandRenamePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "{old.ts => new.ts}", want: "new.ts"},
		{in: "src/{a => b}/x.go", want: "src/b/x.go"},
		{in: "{ => lib}/x.go", want: "lib/x.go"},
		{in: "src/{sub => }/a.ts", want: "src/a.ts"},
		{in: "{sub => }/a.ts", want: "a.ts"},
		{in: "old.go => new.go", want: "new.go"},
		{in: "plain/path.go", want: "plain/path.go"},
		{in: "weird{brace}.go", want: "weird{brace}.go"},
		{in: "lib/{x}/{a.go => b.go}", want: "lib/{x}/b.go"},
		{in: "{x}/{old => new}/{y}.go", want: "{x}/new/{y}.go"},
		{in: "lib/{x}/{a.go => }/c.go", want: "lib/{x}/c.go"},
		{in: "{x}/f.go => {y}/g.go", want: "{y}/g.go"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ExpandRenamePath(tt.in))
		})
	}
}

func TestParseNameStatus(t *testing.T) {
	t.Parallel()

	out := "A\tnew.txt\n" +
		"M\tmod.txt\n" +
		"D\tgone.txt\n" +
		"R087\told/name.go\tnew/name.go\n" +
		"R100\tsame.go\tsame.go\n" +
		"R100\tbroken\n" +
		"T\ttypechange\n" +
		"\n"

	assert.Equal(t, []NameStatus{
		{Kind: ChangeAdded, OldPath: "new.txt", NewPath: "new.txt"},
		{Kind: ChangeModified, OldPath: "mod.txt", NewPath: "mod.txt"},
		{Kind: ChangeDeleted, OldPath: "gone.txt", NewPath: "gone.txt"},
		{Kind: ChangeRenamed, OldPath: "old/name.go", NewPath: "new/name.go"},
		{Kind: ChangeModified, OldPath: "same.go", NewPath: "same.go"},
	}, ParseNameStatus(out))
	assert.Equal(t, []NameStatus{}, ParseNameStatus(""))
}

func TestParseNumStat(t *testing.T) {
	t.Parallel()

	out := "3\t1\tsrc/main.go\n" +
		"-\t-\tlogo.png\n" +
		"10\t0\tsrc/{a => b}/x.go\n" +
		"bad line\n"

	assert.Equal(t, []NumStat{
		{Path: "src/main.go", Additions: 3, Deletions: 1},
		{Path: "logo.png", Binary: true},
		{Path: "src/b/x.go", Additions: 10},
	}, ParseNumStat(out))
}

func TestDiffArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"-c", "core.quotepath=false", "diff", "--name-status", "--find-renames", "--diff-filter=AMDR", "--no-color", "aaaa", "bbbb", "--"},
		NameStatusArgs("aaaa", "bbbb", false))
	assert.Equal(t,
		[]string{"-c", "core.quotepath=false", "diff", "--numstat", "--find-renames", "--diff-filter=AMDR", "--no-color", "-R", "aaaa", "--"},
		NumStatArgs("aaaa", "", true))

	withParent := CommitNameStatusArgs("cccc", "pppp")
	assert.Equal(t, []string{"pppp", "cccc", "--"}, withParent[len(withParent)-3:])

	root := CommitNumStatArgs("cccc", "")
	assert.Contains(t, root, "diff-tree")
	assert.Contains(t, root, "--root")
	assert.Equal(t, []string{"cccc", "--"}, root[len(root)-2:])
}
