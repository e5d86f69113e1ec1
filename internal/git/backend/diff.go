package backend

import (
	"strconv"
	"strings"
)

const (
	reportNameStatus = "--name-status"
	reportNumStat    = "--numstat"
	renameArrow      = " => "
)

// NameStatusArgs compares from with to, or with the working tree when to is
// empty. reverse swaps the sides of a working tree comparison.
func NameStatusArgs(from, to string, reverse bool) []string {
	return diffArgs(reportNameStatus, from, to, reverse)
}

func NumStatArgs(from, to string, reverse bool) []string {
	return diffArgs(reportNumStat, from, to, reverse)
}

func diffArgs(report, from, to string, reverse bool) []string {
	args := []string{
		"-c", "core.quotepath=false",
		"diff",
		report,
		"--find-renames",
		"--diff-filter=AMDR",
		"--no-color",
	}
	if reverse {
		args = append(args, "-R")
	}
	args = append(args, from)
	if to != "" {
		args = append(args, to)
	}
	return append(args, "--")
}

// CommitNameStatusArgs lists the changes a commit introduced over its first
// parent; root commits have no parent and are diffed against the empty tree.
func CommitNameStatusArgs(hash, parent string) []string {
	return commitDiffArgs(reportNameStatus, hash, parent)
}

func CommitNumStatArgs(hash, parent string) []string {
	return commitDiffArgs(reportNumStat, hash, parent)
}

func commitDiffArgs(report, hash, parent string) []string {
	if parent != "" {
		return diffArgs(report, parent, hash, false)
	}
	return []string{
		"-c", "core.quotepath=false",
		"diff-tree",
		report,
		"-r",
		"--root",
		"--no-commit-id",
		"--find-renames",
		"--diff-filter=AMDR",
		"--no-color",
		hash,
		"--",
	}
}

// ParseNameStatus reads "<status>\t<path>[\t<new-path>]" lines.
func ParseNameStatus(out string) []NameStatus {
	entries := []NameStatus{}
	for _, line := range splitLines(out) {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 || fields[0] == "" {
			continue
		}
		switch fields[0][0] {
		case 'A':
			entries = append(entries, NameStatus{Kind: ChangeAdded, OldPath: fields[1], NewPath: fields[1]})
		case 'M':
			entries = append(entries, NameStatus{Kind: ChangeModified, OldPath: fields[1], NewPath: fields[1]})
		case 'D':
			entries = append(entries, NameStatus{Kind: ChangeDeleted, OldPath: fields[1], NewPath: fields[1]})
		case 'R':
			if len(fields) < 3 {
				continue
			}
			kind := ChangeRenamed
			if fields[1] == fields[2] {
				kind = ChangeModified
			}
			entries = append(entries, NameStatus{Kind: kind, OldPath: fields[1], NewPath: fields[2]})
		}
	}
	return entries
}

// ParseNumStat reads "<additions>\t<deletions>\t<path>" lines.
func ParseNumStat(out string) []NumStat {
	stats := []NumStat{}
	for _, line := range splitLines(out) {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 3 {
			continue
		}
		stat := NumStat{Path: ExpandRenamePath(fields[2])}
		additions, errAdd := strconv.Atoi(fields[0])
		deletions, errDel := strconv.Atoi(fields[1])
		if errAdd != nil || errDel != nil {
			stat.Binary = true
		} else {
			stat.Additions = additions
			stat.Deletions = deletions
		}
		stats = append(stats, stat)
	}
	return stats
}

// ExpandRenamePath turns numstat rename syntax into the new path:
// "src/{a => b}/x.go" -> "src/b/x.go", "{ => lib}/x.go" -> "lib/x.go",
// "old.go => new.go" -> "new.go". Only the braces around the arrow are
// rename syntax; other braces belong to the path.
func ExpandRenamePath(p string) string {
	arrow := strings.Index(p, renameArrow)
	if arrow < 0 {
		return p
	}
	open := strings.LastIndex(p[:arrow], "{")
	end := strings.Index(p[arrow:], "}")
	if open < 0 || end < 0 || strings.Contains(p[open:arrow], "}") {
		return p[arrow+len(renameArrow):]
	}
	end += arrow
	prefix, newPart, suffix := p[:open], p[arrow+len(renameArrow):end], p[end+1:]
	if newPart == "" && (prefix == "" || strings.HasSuffix(prefix, "/")) {
		suffix = strings.TrimPrefix(suffix, "/")
	}
	return prefix + newPart + suffix
}
