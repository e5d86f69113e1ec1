package backend

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Separator joins the fields of one record in log, stash and details output.
// It has to survive inside a commit subject without showing up there by accident.
const Separator = "XX7Nal-YARtTpjCikii9nJxER19D6diSyk-AWkPb"

const (
	logFieldCount     = 6
	stashFieldCount   = 7
	detailsFieldCount = 6
)

var eolPattern = regexp.MustCompile(`\r\n|\r|\n`)

func splitLines(s string) []string {
	return eolPattern.Split(s, -1)
}

type DateType uint8

const (
	DateAuthor DateType = iota
	DateCommit
)

func (d DateType) String() string {
	if d == DateCommit {
		return "commit"
	}
	return "author"
}

func (d DateType) placeholder() string {
	if d == DateCommit {
		return "%ct"
	}
	return "%at"
}

// Formats holds the --format strings derived from the date preference.
// Values are built once by NewFormats and never modified.
type Formats struct {
	Date    DateType
	Log     string
	Details string
	Stash   string
}

func NewFormats(date DateType) (Formats, error) {
	if err := validateSeparator(Separator); err != nil {
		return Formats{}, err
	}
	d := date.placeholder()
	return Formats{
		Date:    date,
		Log:     strings.Join([]string{"%H", "%P", "%an", "%ae", d, "%s"}, Separator),
		Details: strings.Join([]string{"%H", "%P", "%an", "%ae", d, "%cn"}, Separator) + "%n%B",
		Stash:   strings.Join([]string{"%H", "%P", "%gD", "%an", "%ae", d, "%s"}, Separator),
	}, nil
}

func validateSeparator(sep string) error {
	if sep == "" {
		return fmt.Errorf("%w: empty field separator", ErrInvalidArgument)
	}
	if strings.Contains(sep, "%") {
		return fmt.Errorf("%w: field separator contains a format placeholder", ErrInvalidArgument)
	}
	if strings.IndexFunc(sep, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: field separator contains whitespace", ErrInvalidArgument)
	}
	return nil
}
