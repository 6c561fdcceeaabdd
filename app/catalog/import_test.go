package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	data := "\ufeffName,Category,ID,Description\n" +
		"Tomato Seeds,Seeds,p1,Hybrid\n" +
		"  युरिया खत , Fertilizer\n" +
		",Seeds,p3,\n"

	rows, err := readImport(strings.NewReader(data), FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, importRow{Line: 2, Input: ProductInput{ID: "p1", Name: "Tomato Seeds", Category: "Seeds", Description: "Hybrid"}}, rows[0])
	assert.Equal(t, importRow{Line: 3, Input: ProductInput{Name: "युरिया खत", Category: "Fertilizer"}}, rows[1])
	assert.Equal(t, 4, rows[2].Line)
	assert.Empty(t, rows[2].Input.Name)
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := readImport(strings.NewReader(""), FormatCSV)
	assert.Error(t, err)

	_, err = readImport(strings.NewReader("id,category\n1,Seeds\n"), FormatCSV)
	assert.ErrorContains(t, err, "no name column")

	_, err = readImport(strings.NewReader("name\nx\n"), ImportFormat("json"))
	assert.ErrorContains(t, err, "unsupported import format")
}

func xlsxFile(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellName, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX(t *testing.T) {
	buf := xlsxFile(t, [][]any{
		{"name", "category"},
		{"तिखट मिरची", "Spices"},
		{"NPK 19 19 19", "Fertilizer"},
	})

	rows, err := readImport(buf, FormatXLSX)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ProductInput{Name: "तिखट मिरची", Category: "Spices"}, rows[0].Input)
	assert.Equal(t, 3, rows[1].Line)
	assert.Equal(t, "NPK 19 19 19", rows[1].Input.Name)
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	_, err := readImport(strings.NewReader("name\nx\n"), FormatXLSX)
	assert.Error(t, err)
}
