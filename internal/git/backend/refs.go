package backend

import (
	"regexp"
	"strings"
)

const (
	headsPrefix   = "refs/heads/"
	tagsPrefix    = "refs/tags/"
	remotesPrefix = "refs/remotes/"
	peeledSuffix  = "^{}"
	arrow         = " -> "
)

func RefArgs(showRemote bool) []string {
	args := []string{"show-ref"}
	if !showRemote {
		args = append(args, "--heads", "--tags")
	}
	return append(args, "-d", "--head")
}

// ParseRefs classifies "<hash> <ref>" lines. Annotated tags are listed twice by
// show-ref -d; the peeled ("^{}") entry wins so the tag points at its commit.
func ParseRefs(out string) RefData {
	data := RefData{Refs: []Ref{}}
	tagIndex := map[string]int{}
	for _, rawLine := range splitLines(out) {
		parts := strings.Fields(rawLine)
		if len(parts) < 2 {
			continue
		}
		hash := parts[0]
		name, _, _ := strings.Cut(strings.Join(parts[1:], " "), arrow)
		switch {
		case strings.HasPrefix(name, headsPrefix):
			short := strings.TrimPrefix(name, headsPrefix)
			if short == "" {
				continue
			}
			data.Refs = append(data.Refs, Ref{Hash: hash, Name: short, Kind: RefKindHead})
		case strings.HasPrefix(name, tagsPrefix):
			short := strings.TrimPrefix(name, tagsPrefix)
			peeled := strings.HasSuffix(short, peeledSuffix)
			short = strings.TrimSuffix(short, peeledSuffix)
			if short == "" {
				continue
			}
			if i, ok := tagIndex[short]; ok {
				if peeled {
					data.Refs[i].Hash = hash
					data.Refs[i].Annotated = true
				}
				continue
			}
			tagIndex[short] = len(data.Refs)
			data.Refs = append(data.Refs, Ref{Hash: hash, Name: short, Kind: RefKindTag, Annotated: peeled})
		case strings.HasPrefix(name, remotesPrefix):
			short := strings.TrimPrefix(name, remotesPrefix)
			if short == "" {
				continue
			}
			data.Refs = append(data.Refs, Ref{Hash: hash, Name: short, Kind: RefKindRemote})
		case name == "HEAD":
			data.Head = hash
		default:
			// refs/stash, refs/notes, ...
		}
	}
	return data
}

// git branch prints a pseudo entry such as "(HEAD detached at 1a2b3c4)" when
// HEAD is not on a branch.
var detachedBranchPattern = regexp.MustCompile(`^\((HEAD detached (at|from) .+|no branch.*)\)$`)

func BranchArgs(showRemote bool) []string {
	if showRemote {
		return []string{"branch", "-a"}
	}
	return []string{"branch"}
}

func ParseBranches(out string) BranchData {
	data := BranchData{Branches: []string{}}
	for _, line := range splitLines(out) {
		if len(line) < 3 {
			continue
		}
		name, _, _ := strings.Cut(line[2:], arrow)
		if name == "" || detachedBranchPattern.MatchString(name) {
			continue
		}
		data.Branches = append(data.Branches, name)
		if line[0] == '*' {
			data.Head = name
		}
	}
	return data
}
