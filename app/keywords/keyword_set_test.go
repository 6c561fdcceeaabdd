package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordSet_Add(t *testing.T) {
	s := newKeywordSet(4)

	assert.True(t, s.Add("Tomato"))
	assert.False(t, s.Add("tomato"), "case-insensitive duplicate")
	assert.False(t, s.Add("  TOMATO "), "trimmed duplicate")
	assert.False(t, s.Add("19"), "digits only")
	assert.False(t, s.Add("a"), "too short")
	assert.False(t, s.Add("क"), "single code point")
	assert.False(t, s.Add("--"), "no letters")
	assert.True(t, s.Add(" खत "))

	assert.Equal(t, []string{"Tomato", "खत"}, s.Keywords())
}

func TestKeywordSet_Limit(t *testing.T) {
	s := newKeywordSet(2)
	s.AddAll("one", "two", "three")

	assert.True(t, s.Full())
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Add("four"))
	assert.Equal(t, []string{"one", "two"}, s.Keywords())
}

func TestKeywordSet_KeywordsIsACopy(t *testing.T) {
	s := newKeywordSet(3)
	s.Add("seeds")
	kws := s.Keywords()
	kws[0] = "changed"
	assert.Equal(t, []string{"seeds"}, s.Keywords())
}
