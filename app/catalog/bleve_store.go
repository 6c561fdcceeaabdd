package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

type BleveProductStore struct {
	idx bleve.Index
}

func NewBleveProductStore(idx bleve.Index) *BleveProductStore {
	return &BleveProductStore{idx: idx}
}

var _ ProductStore = &BleveProductStore{}

func (b *BleveProductStore) Init() error {
	return nil
}

func (b *BleveProductStore) Add(ctx context.Context, ps []Product) error {
	batch := b.idx.NewBatch()
	for i := range ps {
		dbEntry := prepareProductForDb(&ps[i])
		if err := batch.Index(ps[i].ID, &dbEntry); err != nil {
			return err
		}
	}
	return b.idx.Batch(batch)
}

func (b *BleveProductStore) Get(ctx context.Context, id string) (Product, error) {
	searchRequest := bleve.NewSearchRequest(bleve.NewDocIDQuery([]string{id}))
	searchRequest.Size = 1
	searchRequest.Fields = []string{"e"}

	searchResults, err := b.idx.SearchInContext(ctx, searchRequest)
	if err != nil {
		return Product{}, err
	}
	if len(searchResults.Hits) == 0 {
		return Product{}, ErrProductNotFound
	}
	return bleveDocToProduct(searchResults.Hits[0].Fields)
}

func (b *BleveProductStore) List(ctx context.Context, category string) ([]Product, error) {
	count, err := b.idx.DocCount()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []Product{}, nil
	}

	var q query.Query = bleve.NewMatchAllQuery()
	if category != "" {
		tq := bleve.NewTermQuery(strings.ToLower(category))
		tq.SetField("category")
		q = tq
	}

	searchRequest := bleve.NewSearchRequest(q)
	searchRequest.Size = int(count)
	searchRequest.Fields = []string{"e"}
	searchRequest.SortBy([]string{"sort_name", "_id"})

	searchResults, err := b.idx.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve list failed: %w", err)
	}

	products := make([]Product, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		p, err := bleveDocToProduct(hit.Fields)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (b *BleveProductStore) Delete(ctx context.Context, id string) error {
	if _, err := b.Get(ctx, id); err != nil {
		return err
	}
	return b.idx.Delete(id)
}

func bleveDocToProduct(fields map[string]any) (Product, error) {
	raw, ok := fields["e"].(string)
	if !ok {
		return Product{}, fmt.Errorf("missing field e in document")
	}
	var p Product
	err := json.Unmarshal([]byte(raw), &p)
	return p, err
}
