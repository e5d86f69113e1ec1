package backend

import (
	"strconv"
	"strings"
)

func (f Formats) StashArgs() []string {
	return []string{"reflog", "--format=" + f.Stash, "refs/stash", "--"}
}

// ParseStashes reads the stash reflog. A stash commit has the base commit and
// the index commit as parents, plus the untracked-files commit when one was
// saved. Lines that do not fit are skipped individually. %gD prints the full
// "refs/stash@{n}"; selectors are reported as "stash@{n}".
func ParseStashes(out string) []StashRecord {
	var stashes []StashRecord
	for _, line := range splitLines(out) {
		fields := strings.Split(line, Separator)
		if len(fields) != stashFieldCount || !IsHash(fields[0]) {
			continue
		}
		parents := strings.Fields(fields[1])
		if len(parents) < 2 || len(parents) > 3 {
			continue
		}
		date, err := strconv.ParseInt(fields[5], 10, 64)
		if err != nil {
			continue
		}
		rec := StashRecord{
			Hash:      fields[0],
			BaseHash:  parents[0],
			IndexHash: parents[1],
			Selector:  strings.TrimPrefix(fields[2], "refs/"),
			Author:    fields[3],
			Email:     fields[4],
			Date:      date,
			Message:   fields[6],
		}
		if len(parents) == 3 {
			rec.UntrackedFilesHash = parents[2]
		}
		stashes = append(stashes, rec)
	}
	if stashes == nil {
		stashes = []StashRecord{}
	}
	return stashes
}
