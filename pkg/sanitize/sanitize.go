// Package sanitize folds user input and dictionary values into a comparable form.
//
// A sanitized value has no spaces, tabs or newlines, is lowercased, and has every
// accented letter replaced by its ASCII base letter (ǎ -> a, É -> e). Characters
// without such a decomposition, CJK ideographs included, are kept as they are.
package sanitize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var blanks = strings.NewReplacer(" ", "", "\t", "", "\n", "")

// String returns the sanitized form of s. It is idempotent.
func String(s string) string {
	s = strings.ToLower(blanks.Replace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

// Strings sanitizes every element into a new slice.
func Strings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = String(v)
	}
	return out
}

// Value sanitizes a string or a string slice and returns the same shape.
// Anything else is returned untouched.
func Value(v any) any {
	switch t := v.(type) {
	case string:
		return String(t)
	case []string:
		return Strings(t)
	default:
		return v
	}
}

func foldRune(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	decomposed := norm.NFD.String(string(r))
	for _, c := range decomposed {
		if isASCIILetter(c) {
			return unicode.ToLower(c)
		}
	}
	return r
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
