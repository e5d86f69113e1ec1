package present

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

const diffContextLines = 3

// UnifiedFileDiff renders the change between two versions of one file.
// An empty side is shown as /dev/null. Identical contents give "".
func UnifiedFileDiff(oldPath, newPath, oldContent, newContent string) (string, error) {
	fromFile, toFile := "a/"+oldPath, "b/"+newPath
	if oldPath == "" {
		fromFile = "/dev/null"
	}
	if newPath == "" {
		toFile = "/dev/null"
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitContent(oldContent),
		B:        splitContent(newContent),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  diffContextLines,
	})
}

func splitContent(content string) []string {
	if content == "" {
		return []string{}
	}
	return difflib.SplitLines(content)
}

// WriteDiff prints unified diff text, colouring added and removed lines.
func (p *Printer) WriteDiff(w io.Writer, diffText string) error {
	add := p.color(color.FgGreen)
	del := p.color(color.FgRed)
	hunk := p.color(color.FgCyan)
	header := p.color(color.Bold)
	for line := range strings.Lines(diffText) {
		var err error
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			_, err = header.Fprint(w, line)
		case strings.HasPrefix(line, "@@"):
			_, err = hunk.Fprint(w, line)
		case strings.HasPrefix(line, "+"):
			_, err = add.Fprint(w, line)
		case strings.HasPrefix(line, "-"):
			_, err = del.Fprint(w, line)
		default:
			_, err = io.WriteString(w, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
