package catalog

import "time"

// Product is a catalog entry. SearchKeywords is derived from Name on every
// write and is never edited on its own.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	DescriptionText string    `json:"descriptionText,omitempty"`
	Category        string    `json:"category,omitempty"`
	SearchKeywords  []string  `json:"searchKeywords"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProductInput holds the fields a shop admin edits. An empty ID on create
// means a new one is assigned.
type ProductInput struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type SearchParams struct {
	Query    string
	Category string
}

// ImportFormat names a bulk import file format.
type ImportFormat string

const (
	FormatCSV  ImportFormat = "csv"
	FormatXLSX ImportFormat = "xlsx"
)

type ImportResult struct {
	Imported int   `json:"imported"`
	Skipped  []int `json:"skippedRows,omitempty"`
}
