package present

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/thiagokokada/git-graph-go/internal/git"
)

const shortHashLen = 8

// Printer writes human readable listings. Colour is explicit so output does
// not depend on the global terminal detection of fatih/color.
type Printer struct {
	colored bool
	loc     *time.Location
}

func NewPrinter(colored bool) *Printer {
	return &Printer{colored: colored, loc: time.Local}
}

func (p *Printer) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func ShortHash(hash string) string {
	if len(hash) <= shortHashLen {
		return hash
	}
	return hash[:shortHashLen]
}

// WriteLog prints one line per node: lanes, hash, refs, date, author, message.
func (p *Printer) WriteLog(w io.Writer, graph git.CommitGraph) error {
	lanes := GraphLanes(graph.Nodes)
	width := 0
	for _, l := range lanes {
		width = max(width, len(l))
	}
	hashColor := p.color(color.FgYellow)
	stashColor := p.color(color.FgMagenta)
	dim := p.color(color.Faint)
	for i, n := range graph.Nodes {
		var b strings.Builder
		fmt.Fprintf(&b, "%-*s ", width, lanes[i])
		hash := ShortHash(n.Hash)
		if n.Hash == git.UncommittedHash {
			hash = strings.Repeat("*", shortHashLen)
		}
		hashColor.Fprint(&b, hash)
		if labels := p.refLabels(n); labels != "" {
			b.WriteString(" " + labels)
		}
		if n.Stash != nil {
			b.WriteString(" ")
			stashColor.Fprintf(&b, "[%s]", n.Stash.Selector)
		}
		b.WriteString(" ")
		dim.Fprintf(&b, "%s %s", time.Unix(n.Date, 0).In(p.loc).Format("2006-01-02 15:04"), n.Author)
		b.WriteString(" " + n.Message + "\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	if graph.MoreAvailable {
		if _, err := dim.Fprintln(w, "(more commits available)"); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) refLabels(n git.CommitNode) string {
	if len(n.Refs) == 0 {
		return ""
	}
	branchColor := p.color(color.FgGreen)
	remoteColor := p.color(color.FgRed)
	tagColor := p.color(color.FgCyan)
	parts := make([]string, 0, len(n.Refs))
	for _, ref := range n.Refs {
		switch ref.Kind {
		case "tag":
			parts = append(parts, tagColor.Sprint("tag: "+ref.Name))
		case "remote":
			parts = append(parts, remoteColor.Sprint(ref.Name))
		default:
			parts = append(parts, branchColor.Sprint(ref.Name))
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// WriteChanges prints one line per file: type, path and line counts.
func (p *Printer) WriteChanges(w io.Writer, changes []git.FileChange) error {
	kindColor := map[git.ChangeType]*color.Color{
		git.ChangeAdded:    p.color(color.FgGreen),
		git.ChangeModified: p.color(color.FgYellow),
		git.ChangeDeleted:  p.color(color.FgRed),
		git.ChangeRenamed:  p.color(color.FgCyan),
	}
	for _, c := range changes {
		var b strings.Builder
		kindColor[c.Type].Fprint(&b, string(c.Type))
		b.WriteString("\t")
		if c.Type == git.ChangeRenamed {
			b.WriteString(c.OldFilePath + " -> ")
		}
		b.WriteString(c.NewFilePath)
		if c.Additions != nil && c.Deletions != nil {
			fmt.Fprintf(&b, "\t+%d -%d", *c.Additions, *c.Deletions)
		} else {
			b.WriteString("\t(no line counts)")
		}
		b.WriteString("\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) WriteDetails(w io.Writer, d *git.CommitDetails) error {
	hashColor := p.color(color.FgYellow)
	var b strings.Builder
	hashColor.Fprintf(&b, "commit %s\n", d.Hash)
	if len(d.ParentHashes) > 1 {
		short := make([]string, len(d.ParentHashes))
		for i, h := range d.ParentHashes {
			short[i] = ShortHash(h)
		}
		fmt.Fprintf(&b, "Merge:  %s\n", strings.Join(short, " "))
	}
	fmt.Fprintf(&b, "Author: %s <%s>\n", d.Author, d.Email)
	if d.Committer != "" && d.Committer != d.Author {
		fmt.Fprintf(&b, "Commit: %s\n", d.Committer)
	}
	fmt.Fprintf(&b, "Date:   %s\n\n", time.Unix(d.Date, 0).In(p.loc).Format("Mon Jan 2 15:04:05 2006 -0700"))
	for line := range strings.Lines(d.Body) {
		b.WriteString("    " + strings.TrimRight(line, "\n") + "\n")
	}
	b.WriteString("\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return p.WriteChanges(w, d.FileChanges)
}

func (p *Printer) WriteBranches(w io.Writer, list git.BranchList) error {
	current := p.color(color.FgGreen)
	for _, name := range list.Branches {
		var err error
		if name == list.Head {
			_, err = current.Fprintf(w, "* %s\n", name)
		} else {
			_, err = fmt.Fprintf(w, "  %s\n", name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) WriteRepoStatus(w io.Writer, statuses []git.RepoStatus) error {
	ok := p.color(color.FgGreen)
	bad := p.color(color.FgRed)
	for _, s := range statuses {
		var err error
		switch {
		case s.Exists:
			_, err = ok.Fprintf(w, "ok      %s\n", s.Path)
		case s.Error != "":
			_, err = bad.Fprintf(w, "error   %s: %s\n", s.Path, s.Error)
		default:
			_, err = bad.Fprintf(w, "missing %s\n", s.Path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
