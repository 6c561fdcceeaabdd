package keywords

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	dashesToSpace = strings.NewReplacer("-", " ", "_", " ")
	dashesRemoved = strings.NewReplacer("-", "", "_", "")
)

// DelimiterVariants returns s with its delimiters interchanged. Hyphens and
// underscores become spaces or are dropped; spaces become hyphens,
// underscores, or are dropped.
func DelimiterVariants(s string) []string {
	var variants []string
	if strings.ContainsAny(s, "-_") {
		variants = append(variants, dashesToSpace.Replace(s), dashesRemoved.Replace(s))
	}
	if strings.Contains(s, " ") {
		variants = append(variants,
			strings.ReplaceAll(s, " ", "-"),
			strings.ReplaceAll(s, " ", "_"),
			strings.ReplaceAll(s, " ", ""),
		)
	}
	return variants
}

// CaseVariants returns s as given, lowercased, uppercased and title cased.
func CaseVariants(s string) []string {
	// cases.Caser keeps state, so one per call.
	title := cases.Title(language.Und)
	return []string{s, strings.ToLower(s), strings.ToUpper(s), title.String(s)}
}

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '-' || r == '_'
}

// Tokenize lowercases name and splits it on runs of whitespace, hyphens and
// underscores, keeping the order of appearance.
func Tokenize(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), isDelimiter)
}
