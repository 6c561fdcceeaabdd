// Package keywords builds the search keyword set stored on each product: case,
// delimiter, transliterated and phonetic variants of the product name,
// deduplicated and capped.
package keywords

import (
	"strings"

	"github.com/mahesh-hegde/khoj/app/common"
	"github.com/mahesh-hegde/khoj/app/transliteration"
)

// MaxKeywords is the largest keyword set a product carries.
const MaxKeywords = 30

// Generator computes keyword sets. It holds no mutable state and may be shared
// between goroutines.
type Generator struct {
	tl          *transliteration.Transliterator
	maxKeywords int
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxKeywords lowers the cap. Values outside 1..MaxKeywords are ignored.
func WithMaxKeywords(n int) Option {
	return func(g *Generator) {
		if n > 0 && n <= MaxKeywords {
			g.maxKeywords = n
		}
	}
}

// NewGenerator returns a Generator over tl. The cap is MaxKeywords unless an
// option lowers it.
func NewGenerator(tl *transliteration.Transliterator, opts ...Option) *Generator {
	g := &Generator{tl: tl, maxKeywords: MaxKeywords}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the keyword set for a display name. The name and its tokens
// come first; the remaining variants follow in generation order until the cap
// is reached. Entries are unique ignoring case, so the lowercase name is
// present only through the name itself. A name without letters yields an
// empty set.
func (g *Generator) Generate(name string) []string {
	set := newKeywordSet(g.maxKeywords)
	tokens := Tokenize(name)

	// The lowercase name and the case variants share the name's dedup key,
	// so the name entry stands for all of them.
	set.Add(name)
	set.AddAll(tokens...)

	set.AddAll(CaseVariants(name)...)
	for _, v := range DelimiterVariants(name) {
		set.AddAll(v, strings.ToLower(v))
	}

	spans := append([]string{name}, tokens...)
	for _, span := range spans {
		if set.Full() {
			break
		}
		g.addScriptVariants(set, span)
	}
	return set.Keywords()
}

// addScriptVariants adds the transliterated and phonetic variants of a span,
// picking the direction from the span's script.
func (g *Generator) addScriptVariants(set *keywordSet, span string) {
	if common.ClassifyScript(span) == common.ScriptNagari {
		roman := g.tl.ToRoman(span)
		lower := strings.ToLower(roman)
		set.AddAll(roman, lower)
		set.AddAll(PhoneticVariants(lower)...)
		return
	}

	set.Add(g.tl.ToNagari(span))
	for _, v := range PhoneticVariants(strings.ToLower(span)) {
		if set.Full() {
			return
		}
		set.AddAll(v, g.tl.ToNagari(v))
	}
}
