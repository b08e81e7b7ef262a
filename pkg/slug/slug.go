// Package slug derives filesystem-safe base names from free text.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Slugify decomposes accented characters, drops everything outside ASCII,
// collapses each run of non-alphanumerics into one hyphen and lowercases the
// result. The output only contains [a-z0-9-] with no leading or trailing
// hyphen; it is empty when nothing alphanumeric survives.
func Slugify(text string) string {
	if text == "" {
		return ""
	}
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	ascii, _, err := transform.String(t, text)
	if err != nil {
		return ""
	}
	ascii = nonAlnum.ReplaceAllString(ascii, "-")
	return strings.ToLower(strings.Trim(ascii, "-"))
}

// Truncate cuts a slug to at most max bytes. A hyphen exposed by the cut is
// trimmed so the result still satisfies the Slugify output constraints.
func Truncate(slug string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(slug) > max {
		slug = slug[:max]
	}
	return strings.TrimRight(slug, "-")
}

// Make slugifies text and truncates it to max.
func Make(text string, max int) string {
	return Truncate(Slugify(text), max)
}
