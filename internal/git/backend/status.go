package backend

import "strings"

func StatusArgs(showUntracked bool) []string {
	untracked := "--untracked-files=no"
	if showUntracked {
		untracked = "--untracked-files=all"
	}
	return []string{"status", "--porcelain=v2", untracked}
}

// ParseStatus counts the entries of "status --porcelain=v2" output. Ordinary
// (1), rename (2) and unmerged (u) entries carry an XY staged/worktree pair;
// headers (#) and ignored entries (!) are skipped.
func ParseStatus(out string) LocalChanges {
	var res LocalChanges
	for _, line := range splitLines(out) {
		kind, rest, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		switch kind {
		case "1", "2", "u":
			if len(rest) < 2 {
				continue
			}
			res.Changed++
			staged, worktree := rest[0], rest[1]
			res.HasStaged = res.HasStaged || staged != '.'
			res.HasWorktree = res.HasWorktree || (worktree != '.' && worktree != '?')
		case "?":
			res.Untracked++
		}
	}
	return res
}

func UntrackedArgs() []string {
	return []string{"ls-files", "--others", "--exclude-standard"}
}

// ParseUntracked returns the non-blank lines of ls-files output.
func ParseUntracked(out string) []string {
	paths := []string{}
	for _, line := range splitLines(out) {
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths
}
