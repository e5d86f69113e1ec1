package buildinfo

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want string
	}{
		{name: "no info", want: "dev"},
		{name: "devel", info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, want: "dev"},
		{name: "tagged", info: &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}}, want: "v1.2.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.info)
			assert.Equal(t, tt.want, Version())
		})
	}
}

func TestRevisionAndSummary(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.1.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.modified", Value: "true"},
		},
	})
	assert.Equal(t, "0123456789ab-dirty", Revision())

	platform := runtime.GOOS + "/" + runtime.GOARCH + " " + runtime.Version()
	assert.Equal(t, "git-graph-go v0.1.0 (0123456789ab-dirty) "+platform+", git version 2.43.0", Summary("git version 2.43.0"))
	assert.Equal(t, "git-graph-go v0.1.0 (0123456789ab-dirty) "+platform, Summary(""))
}
