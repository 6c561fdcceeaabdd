package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"strings"
)

var ErrProductNotFound = errors.New("product not found")

type ProductStore interface {
	Init() error
	// Add inserts or replaces every product in one batch.
	Add(ctx context.Context, ps []Product) error
	// Get returns ErrProductNotFound if no product has the id.
	Get(ctx context.Context, id string) (Product, error)
	// List returns products ordered by name, restricted to category when it
	// is non-empty. Category comparison ignores case.
	List(ctx context.Context, category string) ([]Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductInDB is the indexed form of a product. E holds the full JSON.
type ProductInDB struct {
	E           string   `json:"e"`
	Name        string   `json:"name"`
	SortName    string   `json:"sort_name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Type implements mapping.Classifier.
func (p *ProductInDB) Type() string {
	return "product"
}

func sortKey(name string) string {
	return strings.ToLower(name)
}

func prepareProductForDb(p *Product) ProductInDB {
	entryJSON, err := json.Marshal(p)
	if err != nil {
		slog.Error("unexpected error", "err", err)
		panic(err)
	}
	description := p.DescriptionText
	if description == "" {
		description = p.Description
	}
	return ProductInDB{
		E:           string(entryJSON),
		Name:        p.Name,
		SortName:    sortKey(p.Name),
		Category:    strings.ToLower(p.Category),
		Description: description,
		Keywords:    p.SearchKeywords,
	}
}

func sortProducts(ps []Product) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := sortKey(ps[i].Name), sortKey(ps[j].Name)
		if a != b {
			return a < b
		}
		return ps[i].ID < ps[j].ID
	})
}
