package textsearch

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Fold lowercases s and strips diacritics so "Médico" and "medico" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Contains reports whether needle occurs in haystack ignoring case and accents.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// Slugify builds the URL slug the kiosk uses for names ("Cardiología Pediátrica" -> "cardiologia-pediatrica").
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(Fold(s), "-"), "-")
}

// SortStrings orders items by key using Spanish collation.
func SortStrings[T any](items []T, key func(T) string) {
	c := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(key(items[i]), key(items[j])) < 0
	})
}
