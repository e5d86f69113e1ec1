package backend

import (
	"strconv"
	"strings"
)

// LogArgs builds the history query. An empty branch lists every local branch,
// tag and HEAD (plus remote-tracking branches when showRemote is set).
// One commit beyond maxCommits is requested so callers can tell whether more exist.
func (f Formats) LogArgs(branch string, maxCommits int, showRemote bool) []string {
	args := []string{
		"-c", "log.showSignature=false",
		"log",
		"--max-count=" + strconv.Itoa(maxCommits+1),
		"--format=" + f.Log,
		"--date-order",
	}
	if branch != "" {
		return append(args, branch, "--")
	}
	args = append(args, "--branches", "--tags")
	if showRemote {
		args = append(args, "--remotes")
	}
	return append(args, "HEAD", "--")
}

// ParseLog reads one commit per line. Parsing stops at the first line that does
// not have the expected shape, so a trailing newline never becomes a record.
func ParseLog(out string) []RawCommit {
	lines := splitLines(out)
	commits := make([]RawCommit, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, Separator)
		if len(fields) != logFieldCount || !IsHash(fields[0]) {
			break
		}
		date, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			break
		}
		commits = append(commits, RawCommit{
			Hash:         fields[0],
			ParentHashes: strings.Fields(fields[1]),
			Author:       fields[2],
			Email:        fields[3],
			Date:         date,
			Subject:      fields[5],
		})
	}
	return commits
}

func (f Formats) DetailsArgs(hash string) []string {
	return []string{
		"-c", "log.showSignature=false",
		"show",
		"--quiet",
		hash,
		"--format=" + f.Details,
	}
}

// ParseCommitDetails reads the header line followed by the raw message body.
// It returns nil when the header is malformed.
func ParseCommitDetails(out string) *CommitDetails {
	lines := splitLines(out)
	fields := strings.Split(lines[0], Separator)
	if len(fields) != detailsFieldCount || !IsHash(fields[0]) {
		return nil
	}
	date, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return nil
	}
	body := lines[1:]
	for len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	return &CommitDetails{
		Hash:         fields[0],
		ParentHashes: strings.Fields(fields[1]),
		Author:       fields[2],
		Email:        fields[3],
		Date:         date,
		Committer:    fields[5],
		Body:         strings.Join(body, "\n"),
	}
}
