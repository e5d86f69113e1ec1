package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want Version
		ok   bool
	}{
		{name: "empty", in: ""},
		{name: "plain", in: "git version 2.44.0\n", want: Version{2, 44, 0}, ok: true},
		{name: "apple", in: "git version 2.39.3 (Apple Git-146)\n", want: Version{2, 39, 3}, ok: true},
		{name: "windows", in: "git version 2.39.3.windows.1\n", want: Version{2, 39, 3}, ok: true},
		{name: "bare", in: "2.42.1\n", want: Version{2, 42, 1}, ok: true},
		{name: "no patch", in: "git version 2.42\n", want: Version{2, 42, 0}, ok: true},
		{name: "garbage", in: "git version not-a-version\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseVersion(tt.in)
			require.Equal(t, tt.ok, ok, "got=%v", got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionLess(t *testing.T) {
	t.Parallel()

	assert.True(t, Version{2, 22, 9}.Less(minGitVersion))
	assert.True(t, Version{1, 99, 99}.Less(minGitVersion))
	assert.False(t, Version{2, 23, 0}.Less(minGitVersion))
	assert.False(t, Version{3, 0, 0}.Less(minGitVersion))
	assert.Equal(t, "2.23.0", MinGitVersion())
}
