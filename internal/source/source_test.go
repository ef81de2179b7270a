package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVReaderStreamsRows(t *testing.T) {
	path := writeTempCSV(t, "CustomerID,FirstName,LastName\n1,Jane,Doe\n2,John,Smith\n")

	reader, err := OpenCSV(path)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, []string{"CustomerID", "FirstName", "LastName"}, reader.Headers())

	var rows []Row
	for reader.Next() {
		rows = append(rows, reader.Row())
	}
	require.NoError(t, reader.Err())
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane", rows[0].Get("FirstName"))
	assert.Equal(t, "2", rows[1].Get("CustomerID"))
	assert.Equal(t, 3, reader.RowNumber())
}

func TestCSVReaderSkipsEmptyRows(t *testing.T) {
	path := writeTempCSV(t, "A,B\n1,2\n,\n\n3,4\n")

	reader, err := OpenCSV(path)
	require.NoError(t, err)
	defer reader.Close()

	var count int
	for reader.Next() {
		count++
	}
	require.NoError(t, reader.Err())
	assert.Equal(t, 2, count)
}

func TestCSVReaderRaggedRowFillsMissingColumns(t *testing.T) {
	path := writeTempCSV(t, "A,B,C\n1,2\n")

	reader, err := OpenCSV(path)
	require.NoError(t, err)
	defer reader.Close()

	require.True(t, reader.Next())
	row := reader.Row()
	assert.True(t, row.Has("C"))
	assert.Equal(t, "", row.Get("C"))
	assert.Equal(t, "fallback", row.GetOr("D", "fallback"))
	assert.Equal(t, "", row.GetOr("C", "fallback"), "present-but-empty must not use the default")
}

func TestCSVReaderEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := OpenCSV(path)
	require.Error(t, err)
}

func TestOpenDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()

	// Build a small workbook the way extract would hand one over.
	xlsxPath := filepath.Join(dir, "product_sample.xlsx")
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]interface{}{"ProductID", "Code"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]interface{}{"10", "WID-1"}))
	require.NoError(t, wb.SaveAs(xlsxPath))
	require.NoError(t, wb.Close())

	reader, err := Open(xlsxPath)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, []string{"ProductID", "Code"}, reader.Headers())
	require.True(t, reader.Next())
	assert.Equal(t, Row{"ProductID": "10", "Code": "WID-1"}, reader.Row())
	assert.False(t, reader.Next())
	require.NoError(t, reader.Err())
}
