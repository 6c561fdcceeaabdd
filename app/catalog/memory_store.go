package catalog

import (
	"context"
	"sync"
)

// MemoryProductStore keeps products in a map. Safe for concurrent use.
type MemoryProductStore struct {
	mu       sync.RWMutex
	products map[string]Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{products: make(map[string]Product)}
}

var _ ProductStore = &MemoryProductStore{}

func (m *MemoryProductStore) Init() error {
	return nil
}

func (m *MemoryProductStore) Add(_ context.Context, ps []Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range ps {
		p := ps[i]
		p.SearchKeywords = append([]string(nil), p.SearchKeywords...)
		m.products[p.ID] = p
	}
	return nil
}

func (m *MemoryProductStore) Get(_ context.Context, id string) (Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (m *MemoryProductStore) List(_ context.Context, category string) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Product, 0, len(m.products))
	for _, p := range m.products {
		if InCategory(category, &p) {
			out = append(out, p)
		}
	}
	sortProducts(out)
	return out, nil
}

func (m *MemoryProductStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}
