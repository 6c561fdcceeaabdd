package common

import (
	"unicode"
	"unicode/utf8"
)

// Script is the writing system a span of text is treated as.
type Script string

const (
	ScriptNagari Script = "dn"
	ScriptRoman  Script = "roman"
)

const (
	devanagariFirst = 'ऀ'
	devanagariLast  = 'ॿ'
)

// IsDevanagari reports whether r lies in the Devanagari block.
func IsDevanagari(r rune) bool {
	return r >= devanagariFirst && r <= devanagariLast
}

// ClassifyScript treats the whole span as Devanagari if it contains at least
// one Devanagari code point, and as Roman otherwise. Mixed spans such as
// "Chilli मिरची" are therefore Devanagari.
func ClassifyScript(s string) Script {
	for _, r := range s {
		if IsDevanagari(r) {
			return ScriptNagari
		}
	}
	return ScriptRoman
}

// HasLetter reports whether s contains at least one Latin or Devanagari letter.
// Digits, punctuation and bare Devanagari signs (matras, virama) don't count.
func HasLetter(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if IsDevanagari(r) || unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}

// RuneLen is the length of s in code points.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
