package transliteration

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mahesh-hegde/khoj/app/common"
	"golang.org/x/text/unicode/norm"
)

// KeyMap groups table keys by their first byte. Keys within a group are sorted
// by length in descending order, so the first prefix hit is the longest.
type KeyMap map[byte][]string

// Transliterator converts between Devanagari and Roman script. It is
// read-only after construction and safe for concurrent use.
type Transliterator struct {
	toNagari map[string]string
	toRoman  map[rune]string
	keys     KeyMap
}

// NewTransliterator returns a Transliterator over the built-in tables.
func NewTransliterator() *Transliterator {
	return newTransliteratorWithTables(romanToNagari, nagariToRoman)
}

func newTransliteratorWithTables(toNagari map[string]string, toRoman map[rune]string) *Transliterator {
	return &Transliterator{
		toNagari: toNagari,
		toRoman:  toRoman,
		keys:     buildKeyMap(toNagari),
	}
}

func buildKeyMap(m map[string]string) KeyMap {
	keys := make(KeyMap)
	for k := range m {
		if k == "" {
			continue
		}
		keys[k[0]] = append(keys[k[0]], k)
	}
	for first := range keys {
		group := keys[first]
		sort.Slice(group, func(i, j int) bool {
			if len(group[i]) != len(group[j]) {
				return len(group[i]) > len(group[j])
			}
			return group[i] < group[j]
		})
	}
	return keys
}

// Convert transliterates source from one script to the other. Converting a
// script to itself returns source unchanged.
func (t *Transliterator) Convert(source string, from, to common.Script) string {
	switch {
	case from == to:
		return source
	case to == common.ScriptNagari:
		return t.ToNagari(source)
	default:
		return t.ToRoman(source)
	}
}

// findLongestMatch returns the longest key that is a prefix of source at offset,
// or "" when nothing matches.
func (t *Transliterator) findLongestMatch(source string, offset int) string {
	candidates, ok := t.keys[source[offset]]
	if !ok {
		return ""
	}
	rest := source[offset:]
	if len(rest) > maxRomanKeyLen {
		rest = rest[:maxRomanKeyLen]
	}
	for _, key := range candidates {
		if strings.HasPrefix(rest, key) {
			return key
		}
	}
	return ""
}

// ToNagari converts Roman text to an approximate Devanagari rendering with a
// greedy longest-match scan: 3, then 2, then 1 letters. No consonant+vowel
// ligatures are composed. Unmapped characters pass through unchanged.
func (t *Transliterator) ToNagari(source string) string {
	source = strings.ToLower(source)

	var result strings.Builder
	result.Grow(len(source) * 3)
	i := 0
	for i < len(source) {
		if match := t.findLongestMatch(source, i); match != "" {
			result.WriteString(t.toNagari[match])
			i += len(match)
			continue
		}
		r, size := utf8.DecodeRuneInString(source[i:])
		result.WriteRune(r)
		i += size
	}
	return result.String()
}

// ToRoman converts Devanagari text to Roman one code point at a time. The
// virama and nukta map to nothing; unmapped characters pass through.
func (t *Transliterator) ToRoman(source string) string {
	source = norm.NFC.String(source)

	var result strings.Builder
	result.Grow(len(source))
	for _, r := range source {
		if roman, ok := t.toRoman[r]; ok {
			result.WriteString(roman)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
