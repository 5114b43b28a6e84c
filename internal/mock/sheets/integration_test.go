package sheets

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/adrinr/budibase/internal/lib/restmachinery"
)

func newTestClient(t *testing.T) Client {
	router := mux.NewRouter()
	router.StrictSlash(true)
	NewEndpoints(&restmachinery.BaseEndpoints{}, NewStore()).Register(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func newTestSheet(t *testing.T, client Client) (string, string) {
	ss, err := client.CreateSpreadsheet(context.Background(), "Test Spreadsheet")
	require.NoError(t, err)
	_, err = client.AddSheet(
		context.Background(),
		ss.ID,
		"Sheet1",
		[]string{"name", "age"},
	)
	require.NoError(t, err)
	return ss.ID, "Sheet1"
}

func TestSpreadsheetAndSheetLifecycle(t *testing.T) {
	client := newTestClient(t)

	ss, err := client.CreateSpreadsheet(context.Background(), "Budget")
	require.NoError(t, err)
	require.NotEmpty(t, ss.ID)
	require.Equal(t, "Budget", ss.Title)
	require.Empty(t, ss.Sheets)

	sheet, err := client.AddSheet(
		context.Background(),
		ss.ID,
		"Expenses",
		[]string{"item", "cost"},
	)
	require.NoError(t, err)
	require.Equal(t, "Expenses", sheet.Title)
	require.Equal(t, []string{"item", "cost"}, sheet.Columns)

	ss, err = client.GetSpreadsheet(context.Background(), ss.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Expenses"}, ss.Sheets)

	sheet, err = client.RenameSheet(
		context.Background(),
		ss.ID,
		"Expenses",
		"Q1 Expenses",
	)
	require.NoError(t, err)
	require.Equal(t, "Q1 Expenses", sheet.Title)

	_, err = client.GetSheet(context.Background(), ss.ID, "Expenses")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unable to get sheet")

	err = client.DeleteSheet(context.Background(), ss.ID, "Q1 Expenses")
	require.NoError(t, err)

	ss, err = client.GetSpreadsheet(context.Background(), ss.ID)
	require.NoError(t, err)
	require.Empty(t, ss.Sheets)
}

func TestAddSheetRejectsDuplicateTitle(t *testing.T) {
	client := newTestClient(t)
	spreadsheetID, sheetTitle := newTestSheet(t, client)
	_, err := client.AddSheet(
		context.Background(),
		spreadsheetID,
		sheetTitle,
		[]string{"name"},
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unable to add sheet")
	require.Contains(t, err.Error(), "already exists")
}

func TestRowCRUD(t *testing.T) {
	client := newTestClient(t)
	spreadsheetID, sheetTitle := newTestSheet(t, client)

	first, err := client.InsertRow(
		context.Background(),
		spreadsheetID,
		sheetTitle,
		Row{"name": "Tony", "age": "48"},
	)
	require.NoError(t, err)
	require.Equal(t, 0, first.Index)

	// New rows land at the bottom
	second, err := client.InsertRow(
		context.Background(),
		spreadsheetID,
		sheetTitle,
		Row{"name": "Pepper"},
	)
	require.NoError(t, err)
	require.Equal(t, 1, second.Index)

	rows, err := client.ListRows(
		context.Background(),
		spreadsheetID,
		sheetTitle,
	)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Tony", rows[0]["name"])
	require.Equal(t, "Pepper", rows[1]["name"])

	updated, err := client.UpdateRow(
		context.Background(),
		spreadsheetID,
		sheetTitle,
		1,
		Row{"name": "Pepper", "age": "42"},
	)
	require.NoError(t, err)
	require.Equal(t, "42", updated.Cells["age"])

	fetched, err := client.GetRow(
		context.Background(),
		spreadsheetID,
		sheetTitle,
		1,
	)
	require.NoError(t, err)
	require.Equal(t, updated, fetched)

	err = client.DeleteRow(context.Background(), spreadsheetID, sheetTitle, 0)
	require.NoError(t, err)

	// Deleting shifts later rows up
	rows, err = client.ListRows(context.Background(), spreadsheetID, sheetTitle)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Pepper", rows[0]["name"])
}

func TestInsertRowRejectsUnknownColumn(t *testing.T) {
	client := newTestClient(t)
	spreadsheetID, sheetTitle := newTestSheet(t, client)
	_, err := client.InsertRow(
		context.Background(),
		spreadsheetID,
		sheetTitle,
		Row{"salary": "1"},
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unable to insert row")
	require.Contains(t, err.Error(), "no column")
}

func TestRowIndexOutOfRange(t *testing.T) {
	client := newTestClient(t)
	spreadsheetID, sheetTitle := newTestSheet(t, client)
	_, err := client.GetRow(
		context.Background(),
		spreadsheetID,
		sheetTitle,
		7,
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unable to get row")
}

func TestSheetOperationsOnUnknownSpreadsheet(t *testing.T) {
	client := newTestClient(t)
	_, err := client.GetSheet(context.Background(), "ss_nope", "Sheet1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unable to get sheet")
	require.Contains(t, err.Error(), "not found")
}
