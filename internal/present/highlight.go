package present

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Highlight writes content with terminal colour escapes, picking the lexer
// from path.
func Highlight(w io.Writer, path, content string, dark bool) error {
	iterator, err := lexerForPath(path).Tokenise(nil, content)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", path, err)
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	return formatter.Format(w, styleFor(dark), iterator)
}

func lexerForPath(path string) chroma.Lexer {
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
