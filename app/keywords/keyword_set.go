package keywords

import (
	"strings"

	"github.com/mahesh-hegde/khoj/app/common"
)

// keywordSet is an insertion-ordered set of keywords with case-insensitive
// membership. It refuses new entries once it holds limit of them.
type keywordSet struct {
	limit   int
	entries []string
	seen    map[string]struct{}
}

func newKeywordSet(limit int) *keywordSet {
	return &keywordSet{
		limit:   limit,
		entries: make([]string, 0, limit),
		seen:    make(map[string]struct{}, limit),
	}
}

// isValidKeyword reports whether a trimmed keyword is at least two code points
// long and contains a Latin or Devanagari letter.
func isValidKeyword(kw string) bool {
	return common.RuneLen(kw) >= 2 && common.HasLetter(kw)
}

// Add trims kw and appends it unless it is invalid, already present under
// case-insensitive comparison, or the set is full. It reports whether kw was
// appended.
func (s *keywordSet) Add(kw string) bool {
	if s.Full() {
		return false
	}
	kw = strings.TrimSpace(kw)
	if !isValidKeyword(kw) {
		return false
	}
	key := strings.ToLower(kw)
	if _, dup := s.seen[key]; dup {
		return false
	}
	s.seen[key] = struct{}{}
	s.entries = append(s.entries, kw)
	return true
}

// AddAll adds every keyword in order and stops early once the set is full.
func (s *keywordSet) AddAll(kws ...string) {
	for _, kw := range kws {
		if s.Full() {
			return
		}
		s.Add(kw)
	}
}

func (s *keywordSet) Full() bool {
	return len(s.entries) >= s.limit
}

func (s *keywordSet) Len() int {
	return len(s.entries)
}

// Keywords returns a copy of the entries in insertion order.
func (s *keywordSet) Keywords() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}
