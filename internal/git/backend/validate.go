package backend

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidHash      = errors.New("invalid commit hash")
	ErrInvalidPath      = errors.New("invalid file path")
	ErrInvalidRefName   = errors.New("invalid ref name")
	ErrInvalidResetMode = errors.New("invalid reset mode")
)

var hashPattern = regexp.MustCompile(`^[0-9a-fA-F]{4,40}$`)

// IsHash reports whether s looks like a full or abbreviated commit hash.
func IsHash(s string) bool {
	return hashPattern.MatchString(s)
}

func ValidateHash(s string) error {
	if !IsHash(s) {
		return fmt.Errorf("%w: %q", ErrInvalidHash, s)
	}
	return nil
}

// ValidatePath rejects paths that could escape the repository root.
func ValidatePath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("%w: contains null byte", ErrInvalidPath)
	}
	slashed := strings.ReplaceAll(p, `\`, "/")
	if path.IsAbs(slashed) || hasDriveLetter(slashed) {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidPath, p)
	}
	for elem := range strings.SplitSeq(slashed, "/") {
		if elem == ".." {
			return fmt.Errorf("%w: %q escapes the repository", ErrInvalidPath, p)
		}
	}
	return nil
}

func hasDriveLetter(p string) bool {
	return len(p) >= 2 && p[1] == ':' && unicode.IsLetter(rune(p[0]))
}

// ValidateRefName keeps ref names from being parsed as options or revision ranges.
func ValidateRefName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRefName)
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("%w: %q starts with '-'", ErrInvalidRefName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains '..'", ErrInvalidRefName, name)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains whitespace or control characters", ErrInvalidRefName, name)
		}
	}
	return nil
}

type ResetMode string

const (
	ResetSoft  ResetMode = "soft"
	ResetMixed ResetMode = "mixed"
	ResetHard  ResetMode = "hard"
)

func ValidateResetMode(mode ResetMode) error {
	switch mode {
	case ResetSoft, ResetMixed, ResetHard:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidResetMode, string(mode))
	}
}
