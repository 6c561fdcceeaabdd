package keywords

import "strings"

// SubstitutionRule replaces every occurrence of Pattern with Replacement.
type SubstitutionRule struct {
	Pattern     string
	Replacement string
}

// PhoneticRules are the confusable-sound swaps, in application order. They
// form five symmetric pairs.
var PhoneticRules = []SubstitutionRule{
	{"k", "c"}, {"c", "k"},
	{"ph", "f"}, {"f", "ph"},
	{"v", "w"}, {"w", "v"},
	{"z", "j"}, {"j", "z"},
	{"s", "sh"}, {"sh", "s"},
}

// PhoneticVariants returns s followed by one variant per rule whose pattern
// occurs in s. Each variant applies exactly one rule globally; rules are never
// chained.
func PhoneticVariants(s string) []string {
	variants := make([]string, 1, len(PhoneticRules)+1)
	variants[0] = s
	for _, rule := range PhoneticRules {
		if !strings.Contains(s, rule.Pattern) {
			continue
		}
		variants = append(variants, strings.ReplaceAll(s, rule.Pattern, rule.Replacement))
	}
	return variants
}
