package backend

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Oldest git that understands every flag sent by this package
// ("status --porcelain=v2", "switch").
var minGitVersion = Version{2, 23, 0}

// Version is a major.minor.patch triple.
type Version [3]int

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

func (v Version) Less(other Version) bool {
	for i := range v {
		if v[i] != other[i] {
			return v[i] < other[i]
		}
	}
	return false
}

func MinGitVersion() string {
	return minGitVersion.String()
}

// Vendor builds add suffixes such as " (Apple Git-146)" or ".windows.1"; only
// the leading numeric triple counts.
var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion reads the output of "git --version".
func ParseVersion(out string) (Version, bool) {
	m := versionPattern.FindStringSubmatch(out)
	if m == nil {
		return Version{}, false
	}
	var v Version
	for i, part := range m[1:] {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, false
		}
		v[i] = n
	}
	return v, true
}

// CheckVersion runs "git --version" and rejects git older than MinGitVersion.
// The reported version line is returned either way.
func CheckVersion(ctx context.Context, ex Executor) (string, error) {
	res := Run(ctx, ex, ".", []string{"--version"}, strings.TrimSpace)
	if err := res.Err(); err != nil {
		return "", err
	}
	got, ok := ParseVersion(res.Value)
	if !ok {
		return res.Value, fmt.Errorf("unable to parse git version output: %q", res.Value)
	}
	if got.Less(minGitVersion) {
		return res.Value, fmt.Errorf("git %s is too old, at least %s is required", got, minGitVersion)
	}
	return res.Value, nil
}
