package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/adrinr/budibase/internal/lib/apimachinery"
)

// Client is a generic table/row REST client for the spreadsheet service.
// Tests use it to exercise datasource-style CRUD without hand-rolled HTTP.
type Client interface {
	CreateSpreadsheet(
		ctx context.Context,
		title string,
	) (Spreadsheet, error)
	GetSpreadsheet(ctx context.Context, id string) (Spreadsheet, error)
	AddSheet(
		ctx context.Context,
		spreadsheetID string,
		title string,
		columns []string,
	) (Sheet, error)
	GetSheet(
		ctx context.Context,
		spreadsheetID string,
		title string,
	) (Sheet, error)
	RenameSheet(
		ctx context.Context,
		spreadsheetID string,
		title string,
		newTitle string,
	) (Sheet, error)
	DeleteSheet(
		ctx context.Context,
		spreadsheetID string,
		title string,
	) error
	InsertRow(
		ctx context.Context,
		spreadsheetID string,
		title string,
		row Row,
	) (RowRef, error)
	ListRows(
		ctx context.Context,
		spreadsheetID string,
		title string,
	) ([]Row, error)
	GetRow(
		ctx context.Context,
		spreadsheetID string,
		title string,
		index int,
	) (RowRef, error)
	UpdateRow(
		ctx context.Context,
		spreadsheetID string,
		title string,
		index int,
		row Row,
	) (RowRef, error)
	DeleteRow(
		ctx context.Context,
		spreadsheetID string,
		title string,
		index int,
	) error
}

type client struct {
	*apimachinery.BaseClient
}

// NewClient returns a spreadsheet service client. Failures always raise to
// the caller.
func NewClient(baseURL string) Client {
	return &client{
		BaseClient: &apimachinery.BaseClient{
			BaseURL:    baseURL,
			HTTPClient: &http.Client{},
		},
	}
}

func (c *client) CreateSpreadsheet(
	ctx context.Context,
	title string,
) (Spreadsheet, error) {
	ss := Spreadsheet{}
	return ss, c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method:    http.MethodPost,
			Path:      "/api/spreadsheets",
			Body:      CreateSpreadsheetRequest{Title: title},
			Operation: "create spreadsheet",
			RespObj:   &ss,
		},
	)
}

func (c *client) GetSpreadsheet(
	ctx context.Context,
	id string,
) (Spreadsheet, error) {
	ss := Spreadsheet{}
	return ss, c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method:    http.MethodGet,
			Path:      fmt.Sprintf("/api/spreadsheets/%s", id),
			Operation: "get spreadsheet",
			RespObj:   &ss,
		},
	)
}

func (c *client) AddSheet(
	ctx context.Context,
	spreadsheetID string,
	title string,
	columns []string,
) (Sheet, error) {
	sheet := Sheet{}
	return sheet, c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/api/spreadsheets/%s/sheets", spreadsheetID),
			Body: CreateSheetRequest{
				Title:   title,
				Columns: columns,
			},
			Operation: "add sheet",
			RespObj:   &sheet,
		},
	)
}

func (c *client) GetSheet(
	ctx context.Context,
	spreadsheetID string,
	title string,
) (Sheet, error) {
	sheet := Sheet{}
	return sheet, c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method:    http.MethodGet,
			Path:      sheetPath(spreadsheetID, title),
			Operation: "get sheet",
			RespObj:   &sheet,
		},
	)
}

func (c *client) RenameSheet(
	ctx context.Context,
	spreadsheetID string,
	title string,
	newTitle string,
) (Sheet, error) {
	sheet := Sheet{}
	return sheet, c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method:    http.MethodPut,
			Path:      sheetPath(spreadsheetID, title),
			Body:      RenameSheetRequest{Title: newTitle},
			Operation: "rename sheet",
			RespObj:   &sheet,
		},
	)
}

func (c *client) DeleteSheet(
	ctx context.Context,
	spreadsheetID string,
	title string,
) error {
	return c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method:    http.MethodDelete,
			Path:      sheetPath(spreadsheetID, title),
			Operation: "delete sheet",
		},
	)
}

func (c *client) InsertRow(
	ctx context.Context,
	spreadsheetID string,
	title string,
	row Row,
) (RowRef, error) {
	ref := RowRef{}
	return ref, c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method:    http.MethodPost,
			Path:      fmt.Sprintf("%s/rows", sheetPath(spreadsheetID, title)),
			Body:      row,
			Operation: "insert row",
			RespObj:   &ref,
		},
	)
}

func (c *client) ListRows(
	ctx context.Context,
	spreadsheetID string,
	title string,
) ([]Row, error) {
	rows := []Row{}
	return rows, c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method:    http.MethodGet,
			Path:      fmt.Sprintf("%s/rows", sheetPath(spreadsheetID, title)),
			Operation: "list rows",
			RespObj:   &rows,
		},
	)
}

func (c *client) GetRow(
	ctx context.Context,
	spreadsheetID string,
	title string,
	index int,
) (RowRef, error) {
	ref := RowRef{}
	return ref, c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method:    http.MethodGet,
			Path:      rowPath(spreadsheetID, title, index),
			Operation: "get row",
			RespObj:   &ref,
		},
	)
}

func (c *client) UpdateRow(
	ctx context.Context,
	spreadsheetID string,
	title string,
	index int,
	row Row,
) (RowRef, error) {
	ref := RowRef{}
	return ref, c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method:    http.MethodPut,
			Path:      rowPath(spreadsheetID, title, index),
			Body:      row,
			Operation: "update row",
			RespObj:   &ref,
		},
	)
}

func (c *client) DeleteRow(
	ctx context.Context,
	spreadsheetID string,
	title string,
	index int,
) error {
	return c.ExecuteRequest(
		ctx,
		nil,
		apimachinery.RequestInit{
			Method:    http.MethodDelete,
			Path:      rowPath(spreadsheetID, title, index),
			Operation: "delete row",
		},
	)
}

func sheetPath(spreadsheetID, title string) string {
	return fmt.Sprintf(
		"/api/spreadsheets/%s/sheets/%s",
		spreadsheetID,
		url.PathEscape(title),
	)
}

func rowPath(spreadsheetID, title string, index int) string {
	return fmt.Sprintf("%s/rows/%d", sheetPath(spreadsheetID, title), index)
}
