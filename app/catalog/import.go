package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// importRow is one data row of an import file. Line is 1-based and counts
// the header.
type importRow struct {
	Line  int
	Input ProductInput
}

type columnIndex struct {
	id, name, description, category int
}

func newColumnIndex(header []string) (columnIndex, error) {
	idx := columnIndex{id: -1, name: -1, description: -1, category: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "id":
			idx.id = i
		case "name":
			idx.name = i
		case "description":
			idx.description = i
		case "category":
			idx.category = i
		}
	}
	if idx.name < 0 {
		return idx, errors.New("import file has no name column")
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c columnIndex) input(row []string) ProductInput {
	return ProductInput{
		ID:          cell(row, c.id),
		Name:        cell(row, c.name),
		Description: cell(row, c.description),
		Category:    cell(row, c.category),
	}
}

func rowsToInputs(rows [][]string) ([]importRow, error) {
	if len(rows) == 0 {
		return nil, errors.New("import file is empty")
	}
	cols, err := newColumnIndex(rows[0])
	if err != nil {
		return nil, err
	}
	out := make([]importRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		out = append(out, importRow{Line: i + 2, Input: cols.input(row)})
	}
	return out, nil
}

// readCSV reads a header row followed by product rows.
func readCSV(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rowsToInputs(rows)
}

// readXLSX reads the first sheet of a workbook the same way as readCSV.
func readXLSX(r io.Reader) ([]importRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	return rowsToInputs(rows)
}

func readImport(r io.Reader, format ImportFormat) ([]importRow, error) {
	switch format {
	case FormatCSV:
		return readCSV(r)
	case FormatXLSX:
		return readXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported import format: %q", format)
	}
}
