// Package catalog stores products together with their generated search
// keywords and answers storefront search queries against them.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mahesh-hegde/khoj/app/common"
	"github.com/mahesh-hegde/khoj/app/keywords"
	"github.com/patrickmn/go-cache"
)

const batchSize = 1024

type ProductService struct {
	store       ProductStore
	generator   *keywords.Generator
	flattener   *DescriptionFlattener
	searchCache *cache.Cache
	now         func() time.Time
}

// NewProductService returns a service over store. Search results are cached
// for cacheTTL; a non-positive TTL disables the cache.
func NewProductService(store ProductStore, generator *keywords.Generator, cacheTTL time.Duration) *ProductService {
	s := &ProductService{
		store:     store,
		generator: generator,
		flattener: NewDescriptionFlattener(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	if cacheTTL > 0 {
		s.searchCache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return s
}

// Keywords returns the keyword set a product with this name would carry.
func (s *ProductService) Keywords(name string) []string {
	return s.generator.Generate(name)
}

// apply copies the editable fields of in onto p and recomputes everything
// derived from them.
func (s *ProductService) apply(p *Product, in ProductInput) {
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.DescriptionText = s.flattener.PlainText(in.Description)
	p.Category = strings.TrimSpace(in.Category)
	p.SearchKeywords = s.generator.Generate(p.Name)
	p.UpdatedAt = s.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = p.UpdatedAt
	}
	slog.Debug("generated search keywords", "id", p.ID, "name", p.Name, "count", len(p.SearchKeywords))
}

func validateInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return common.NewBadRequest("product name is required")
	}
	return nil
}

func (s *ProductService) invalidate() {
	if s.searchCache != nil {
		s.searchCache.Flush()
	}
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (Product, error) {
	if err := validateInput(in); err != nil {
		return Product{}, err
	}
	p := Product{ID: strings.TrimSpace(in.ID)}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.apply(&p, in)

	if err := s.store.Add(ctx, []Product{p}); err != nil {
		slog.Error("failed to store product", "id", p.ID, "err", err)
		return Product{}, fmt.Errorf("failed to store product: %w", err)
	}
	s.invalidate()
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (Product, error) {
	if err := validateInput(in); err != nil {
		return Product{}, err
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	s.apply(&p, in)

	if err := s.store.Add(ctx, []Product{p}); err != nil {
		slog.Error("failed to update product", "id", p.ID, "err", err)
		return Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	s.invalidate()
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (Product, error) {
	p, err := s.store.Get(ctx, id)
	if errors.Is(err, ErrProductNotFound) {
		return Product{}, common.NewNotFound("no product with id %q", id)
	}
	return p, err
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, ErrProductNotFound) {
		return common.NewNotFound("no product with id %q", id)
	}
	if err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Search returns the products matching params. A blank query returns every
// product in the category.
func (s *ProductService) Search(ctx context.Context, params SearchParams) ([]Product, error) {
	params.Query = strings.TrimSpace(params.Query)
	params.Category = strings.TrimSpace(params.Category)
	key := strings.ToLower(params.Category) + "\x00" + strings.ToLower(params.Query)

	if s.searchCache != nil {
		if cached, found := s.searchCache.Get(key); found {
			return append([]Product(nil), cached.([]Product)...), nil
		}
	}

	products, err := s.store.List(ctx, params.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	matched := Filter(products, params)

	if s.searchCache != nil {
		s.searchCache.SetDefault(key, matched)
		return append([]Product(nil), matched...), nil
	}
	return matched, nil
}

func (s *ProductService) addInBatches(ctx context.Context, ps []Product) error {
	for start := 0; start < len(ps); start += batchSize {
		end := min(start+batchSize, len(ps))
		slog.Info("ingesting product batch", "size", end-start)
		if err := s.store.Add(ctx, ps[start:end]); err != nil {
			return fmt.Errorf("failed to execute batch: %w", err)
		}
	}
	return nil
}

// Import reads products from a CSV or XLSX file and stores them with fresh
// keyword sets. Rows with an id that already exists replace that product.
// Rows without a name are skipped and reported by line number.
func (s *ProductService) Import(ctx context.Context, r io.Reader, format ImportFormat) (ImportResult, error) {
	rows, err := readImport(r, format)
	if err != nil {
		return ImportResult{}, common.NewBadRequest("could not read import file: %v", err)
	}

	var result ImportResult
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		if validateInput(row.Input) != nil {
			slog.Warn("skipping import row without name", "line", row.Line)
			result.Skipped = append(result.Skipped, row.Line)
			continue
		}

		p := Product{ID: row.Input.ID}
		if p.ID == "" {
			p.ID = uuid.NewString()
		} else if existing, err := s.store.Get(ctx, p.ID); err == nil {
			p = existing
		} else if !errors.Is(err, ErrProductNotFound) {
			return result, fmt.Errorf("failed to look up product %s: %w", p.ID, err)
		}
		s.apply(&p, row.Input)
		products = append(products, p)
	}

	if err := s.addInBatches(ctx, products); err != nil {
		return result, err
	}
	s.invalidate()
	result.Imported = len(products)
	slog.Info("imported products", "imported", result.Imported, "skipped", len(result.Skipped))
	return result, nil
}

// RegenerateKeywords recomputes and stores the keyword set of every product.
// It returns the number of products rewritten.
func (s *ProductService) RegenerateKeywords(ctx context.Context) (int, error) {
	products, err := s.store.List(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to list products: %w", err)
	}
	for i := range products {
		products[i].SearchKeywords = s.generator.Generate(products[i].Name)
	}
	if err := s.addInBatches(ctx, products); err != nil {
		return 0, err
	}
	s.invalidate()
	return len(products), nil
}
