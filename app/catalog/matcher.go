package catalog

import "strings"

// Matches reports whether query matches the product. The lowercased query is
// tested for containment in the name, description and category, and
// containment in either direction against each stored keyword.
//
// An empty query matches everything; callers treat it as "no filter" and
// should not call Matches with it.
func Matches(query string, p *Product) bool {
	q := strings.ToLower(query)

	description := p.DescriptionText
	if description == "" {
		description = p.Description
	}
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(description), q) ||
		strings.Contains(strings.ToLower(p.Category), q) {
		return true
	}

	for _, kw := range p.SearchKeywords {
		kw = strings.ToLower(kw)
		if strings.Contains(kw, q) || strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// InCategory reports whether the product belongs to category, ignoring case.
// An empty category admits every product.
func InCategory(category string, p *Product) bool {
	return category == "" || strings.EqualFold(p.Category, category)
}

// Filter returns the products matching params, in their original order. The
// category restriction applies first. A blank query applies no text filter.
func Filter(products []Product, params SearchParams) []Product {
	query := strings.TrimSpace(params.Query)
	matched := make([]Product, 0)
	for i := range products {
		if !InCategory(params.Category, &products[i]) {
			continue
		}
		if query != "" && !Matches(query, &products[i]) {
			continue
		}
		matched = append(matched, products[i])
	}
	return matched
}
