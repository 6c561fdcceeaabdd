package catalog

import (
	"fmt"

	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
)

const indicAnalyzer = "indic_ws"

var _ mapping.Classifier = &ProductInDB{}

// BleveIndexMapping returns the index mapping for ProductInDB documents.
func BleveIndexMapping() (mapping.IndexMapping, error) {
	indexMapping := mapping.NewIndexMapping()

	// Devanagari and Roman text, split on unicode word boundaries
	err := indexMapping.AddCustomAnalyzer(indicAnalyzer,
		map[string]any{
			"type":      custom.Name,
			"tokenizer": unicode.Name,
			"token_filters": []string{
				lowercase.Name,
			},
		})
	if err != nil {
		return nil, fmt.Errorf("error when defining analyzer: %w", err)
	}

	productMapping := mapping.NewDocumentMapping()

	eField := mapping.NewKeywordFieldMapping()
	eField.Store = true
	eField.Index = false
	productMapping.AddFieldMappingsAt("e", eField) // stored only

	productMapping.AddFieldMappingsAt("category", mapping.NewKeywordFieldMapping())
	productMapping.AddFieldMappingsAt("sort_name", mapping.NewKeywordFieldMapping())

	// Full-text fields. The store itself only lists and looks up by id;
	// these serve match queries run directly against the index, such as
	// `bleve query` over products.bleve.
	for _, name := range []string{"name", "description", "keywords"} {
		f := mapping.NewTextFieldMapping()
		f.Analyzer = indicAnalyzer
		productMapping.AddFieldMappingsAt(name, f)
	}

	indexMapping.AddDocumentMapping("product", productMapping)
	indexMapping.DefaultMapping = productMapping
	indexMapping.TypeField = "_type"

	return indexMapping, nil
}
