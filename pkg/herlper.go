package pkg

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackSlug is used when a name has no character that survives Slugify.
const FallbackSlug = "empresa"

var nonSlugChars = regexp.MustCompile("[^a-z0-9]+")

// combining diacritical marks block, U+0300..U+036F
var combiningMarks = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
})

// Slugify lower-cases text, strips diacritics and joins the remaining
// [a-z0-9] runs with single hyphens.
func Slugify(text string) string {
	slug := strings.ToLower(text)
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks))
	if stripped, _, err := transform.String(t, slug); err == nil {
		slug = stripped
	}
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// GenerateSlug is Slugify with a fallback for names that slugify to nothing.
func GenerateSlug(company string) string {
	slug := Slugify(company)
	if slug == "" {
		return FallbackSlug
	}
	return slug
}

// CapitalizeFirst upper-cases only the first character of s.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}
