package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScript(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Script
	}{
		{"Plain Roman", "Tomato Seeds", ScriptRoman},
		{"Digits and delimiters", "NPK-19-19-19", ScriptRoman},
		{"Empty", "", ScriptRoman},
		{"Devanagari", "युरिया खत", ScriptNagari},
		{"Mixed treated as Devanagari", "Chilli मिरची", ScriptNagari},
		{"Lone matra", "ि", ScriptNagari},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyScript(tc.input))
		})
	}
}

func TestHasLetter(t *testing.T) {
	assert.True(t, HasLetter("npk"))
	assert.True(t, HasLetter("19a"))
	assert.True(t, HasLetter("खत"))
	assert.False(t, HasLetter("19"))
	assert.False(t, HasLetter("--"))
	assert.False(t, HasLetter("िा"))
	assert.False(t, HasLetter("१९"))
	assert.False(t, HasLetter("Ω"))
	assert.False(t, HasLetter(""))
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 1, RuneLen("क"))
	assert.Equal(t, 2, RuneLen("खत"))
	assert.Equal(t, 3, RuneLen("npk"))
}
