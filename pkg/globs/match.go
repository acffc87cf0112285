package globs

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/flatcfg/pkg/errors"
)

// Translate rewrites the extglob groups ?(a|b) and @(a|b) into doublestar
// alternation, and expands a trailing-slash directory pattern to everything
// below it. Negated and repeating groups (!(...), *(...), +(...)) have no
// doublestar equivalent and are rejected.
func Translate(pattern string) (string, error) {
	var b strings.Builder
	b.Grow(len(pattern) + 4)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			b.WriteByte(c)
			b.WriteByte(pattern[i+1])
			i++
			continue
		}

		if i+1 < len(pattern) && pattern[i+1] == '(' && strings.IndexByte("?@!*+", c) >= 0 {
			end := closingParen(pattern, i+1)
			if end < 0 {
				return "", invalid(pattern, "unterminated extglob group")
			}
			body := pattern[i+2 : end]
			alts := strings.ReplaceAll(body, "|", ",")

			switch c {
			case '?':
				b.WriteString("{," + alts + "}")
			case '@':
				b.WriteString("{" + alts + "}")
			default:
				return "", invalid(pattern, "unsupported extglob group "+string(c)+"(...)")
			}
			i = end
			continue
		}

		b.WriteByte(c)
	}

	out := b.String()
	if strings.HasSuffix(out, "/") {
		out += "**"
	}

	if !doublestar.ValidatePattern(out) {
		return "", invalid(pattern, "malformed pattern")
	}
	return out, nil
}

func closingParen(pattern string, open int) int {
	depth := 0
	for j := open; j < len(pattern); j++ {
		switch pattern[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func invalid(pattern, reason string) error {
	return errors.Newf(errors.ErrGlobInvalid, "invalid glob %q: %s", pattern, reason).
		WithDetail("pattern", pattern)
}

// Match reports whether the slash-separated relative path matches pattern
func Match(pattern, path string) (bool, error) {
	translated, err := Translate(pattern)
	if err != nil {
		return false, err
	}
	return doublestar.Match(translated, normalize(path))
}

// MatchAny reports whether path matches at least one of patterns. The first
// malformed pattern aborts the scan.
func MatchAny(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := Match(pattern, path)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// Validate checks every pattern without matching anything
func Validate(patterns ...string) error {
	for _, pattern := range patterns {
		if _, err := Translate(pattern); err != nil {
			return err
		}
	}
	return nil
}

func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}
