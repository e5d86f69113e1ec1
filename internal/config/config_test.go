package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    func(Config) Config
		wantErr string
	}{
		{
			name: "empty_keeps_defaults",
			data: "",
			want: func(c Config) Config { return c },
		},
		{
			name: "overrides",
			data: "git_path = \"/usr/local/bin/git\"\ndate_type = \"Commit\"\nmax_commits = 50\nshow_remote_branches = false\ntheme = \"dark\"\n",
			want: func(c Config) Config {
				c.GitPath = "/usr/local/bin/git"
				c.DateType = DateCommit
				c.MaxCommits = 50
				c.ShowRemoteBranches = false
				c.Theme = ThemeDark
				return c
			},
		},
		{name: "bad_date_type", data: "date_type = \"tomorrow\"\n", wantErr: "date_type"},
		{name: "bad_max_commits", data: "max_commits = 0\n", wantErr: "max_commits"},
		{name: "bad_theme", data: "theme = \"neon\"\n", wantErr: "theme"},
		{name: "empty_git_path", data: "git_path = \"  \"\n", wantErr: "git_path"},
		{name: "malformed", data: "max_commits = \n", wantErr: "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			err := Parse([]byte(tt.data), &cfg)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want(Default()), cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.toml")

	cfg, err := Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, false)
	assert.Error(t, err)

	path := filepath.Join(dir, "sub", ConfigFile)
	want := Default()
	want.MaxCommits = 42
	want.Theme = ThemeLight
	require.NoError(t, Save(path, want))
	got, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, os.WriteFile(path, []byte("theme = 3\n"), 0o644))
	_, err = Load(path, false)
	assert.Error(t, err)
}
