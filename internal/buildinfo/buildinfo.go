// Package buildinfo reports how the binary was built.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var readBuildInfo = debug.ReadBuildInfo

// Version returns the module version, or "dev" for local builds.
func Version() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return "dev"
	}
	switch info.Main.Version {
	case "", "(devel)":
		return "dev"
	}
	return info.Main.Version
}

// Revision returns the VCS revision stamped by the go tool, shortened, with a
// "-dirty" suffix for modified trees.
func Revision() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return ""
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}

// Summary is the line printed by the version command. gitVersion is the
// output of "git --version" and may be empty when git could not be queried.
func Summary(gitVersion string) string {
	s := "git-graph-go " + Version()
	if rev := Revision(); rev != "" {
		s += fmt.Sprintf(" (%s)", rev)
	}
	s += fmt.Sprintf(" %s/%s %s", runtime.GOOS, runtime.GOARCH, runtime.Version())
	if gitVersion != "" {
		s += ", " + gitVersion
	}
	return s
}
