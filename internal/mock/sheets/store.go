// Package sheets is an in-memory stand-in for an external spreadsheet
// service, paired with a generic table/row REST client. Integration tests
// exercise datasource-style CRUD against it without touching the real
// service.
package sheets

import (
	"fmt"
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/adrinr/budibase/internal/meta"
)

// Row maps column names to cell values.
type Row map[string]interface{}

// RowRef is a row together with its position in the sheet.
type RowRef struct {
	Index int `json:"index"`
	Cells Row `json:"cells"`
}

// Spreadsheet describes one spreadsheet and the titles of its sheets.
type Spreadsheet struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Sheets []string `json:"sheets"`
}

// Sheet is one table: an ordered column set plus data rows.
type Sheet struct {
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

type spreadsheet struct {
	id         string
	title      string
	sheetOrder []string
	sheets     map[string]*Sheet
}

// Store holds all of the mock spreadsheet service's state behind one mutex.
type Store struct {
	mu           sync.Mutex
	spreadsheets map[string]*spreadsheet
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		spreadsheets: map[string]*spreadsheet{},
	}
}

// CreateSpreadsheet creates an empty spreadsheet.
func (s *Store) CreateSpreadsheet(title string) Spreadsheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss := &spreadsheet{
		id:     fmt.Sprintf("ss_%s", uuid.NewV4().String()),
		title:  title,
		sheets: map[string]*Sheet{},
	}
	s.spreadsheets[ss.id] = ss
	return describe(ss)
}

// GetSpreadsheet returns one spreadsheet by ID.
func (s *Store) GetSpreadsheet(id string) (Spreadsheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.spreadsheet(id)
	if err != nil {
		return Spreadsheet{}, err
	}
	return describe(ss), nil
}

// AddSheet adds a sheet with the given column set. Sheet titles are unique
// within a spreadsheet.
func (s *Store) AddSheet(
	spreadsheetID string,
	title string,
	columns []string,
) (Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.spreadsheet(spreadsheetID)
	if err != nil {
		return Sheet{}, err
	}
	if _, ok := ss.sheets[title]; ok {
		return Sheet{}, &meta.ErrConflict{
			Type:   "Sheet",
			ID:     title,
			Reason: fmt.Sprintf("A sheet titled %q already exists.", title),
		}
	}
	sheet := &Sheet{
		Title:   title,
		Columns: columns,
		Rows:    []Row{},
	}
	ss.sheets[title] = sheet
	ss.sheetOrder = append(ss.sheetOrder, title)
	return *sheet, nil
}

// GetSheet returns one sheet by title.
func (s *Store) GetSheet(spreadsheetID, title string) (Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sheet, err := s.sheet(spreadsheetID, title)
	if err != nil {
		return Sheet{}, err
	}
	return *sheet, nil
}

// RenameSheet retitles one sheet, keeping its position, columns, and rows.
func (s *Store) RenameSheet(
	spreadsheetID string,
	title string,
	newTitle string,
) (Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.spreadsheet(spreadsheetID)
	if err != nil {
		return Sheet{}, err
	}
	sheet, ok := ss.sheets[title]
	if !ok {
		return Sheet{}, &meta.ErrNotFound{Type: "Sheet", ID: title}
	}
	if newTitle == title {
		return *sheet, nil
	}
	if _, ok := ss.sheets[newTitle]; ok {
		return Sheet{}, &meta.ErrConflict{
			Type:   "Sheet",
			ID:     newTitle,
			Reason: fmt.Sprintf("A sheet titled %q already exists.", newTitle),
		}
	}
	sheet.Title = newTitle
	ss.sheets[newTitle] = sheet
	delete(ss.sheets, title)
	for i, existing := range ss.sheetOrder {
		if existing == title {
			ss.sheetOrder[i] = newTitle
		}
	}
	return *sheet, nil
}

// DeleteSheet removes one sheet and all its rows.
func (s *Store) DeleteSheet(spreadsheetID, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.spreadsheet(spreadsheetID)
	if err != nil {
		return err
	}
	if _, ok := ss.sheets[title]; !ok {
		return &meta.ErrNotFound{Type: "Sheet", ID: title}
	}
	delete(ss.sheets, title)
	for i, existing := range ss.sheetOrder {
		if existing == title {
			ss.sheetOrder = append(
				ss.sheetOrder[:i],
				ss.sheetOrder[i+1:]...,
			)
			break
		}
	}
	return nil
}

// InsertRow appends a row at the bottom of the sheet and returns it with its
// index. Cells naming a column the sheet does not have are rejected.
func (s *Store) InsertRow(
	spreadsheetID string,
	title string,
	row Row,
) (RowRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sheet, err := s.sheet(spreadsheetID, title)
	if err != nil {
		return RowRef{}, err
	}
	if err := validateCells(sheet, row); err != nil {
		return RowRef{}, err
	}
	sheet.Rows = append(sheet.Rows, row)
	return RowRef{Index: len(sheet.Rows) - 1, Cells: row}, nil
}

// ListRows returns all of a sheet's rows in order.
func (s *Store) ListRows(spreadsheetID, title string) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sheet, err := s.sheet(spreadsheetID, title)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(sheet.Rows))
	copy(rows, sheet.Rows)
	return rows, nil
}

// GetRow returns one row by index.
func (s *Store) GetRow(
	spreadsheetID string,
	title string,
	index int,
) (RowRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sheet, err := s.sheet(spreadsheetID, title)
	if err != nil {
		return RowRef{}, err
	}
	if index < 0 || index >= len(sheet.Rows) {
		return RowRef{}, &meta.ErrNotFound{
			Type: "Row",
			ID:   fmt.Sprintf("%d", index),
		}
	}
	return RowRef{Index: index, Cells: sheet.Rows[index]}, nil
}

// UpdateRow replaces one row by index.
func (s *Store) UpdateRow(
	spreadsheetID string,
	title string,
	index int,
	row Row,
) (RowRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sheet, err := s.sheet(spreadsheetID, title)
	if err != nil {
		return RowRef{}, err
	}
	if index < 0 || index >= len(sheet.Rows) {
		return RowRef{}, &meta.ErrNotFound{
			Type: "Row",
			ID:   fmt.Sprintf("%d", index),
		}
	}
	if err := validateCells(sheet, row); err != nil {
		return RowRef{}, err
	}
	sheet.Rows[index] = row
	return RowRef{Index: index, Cells: row}, nil
}

// DeleteRow removes one row by index. Later rows shift up.
func (s *Store) DeleteRow(spreadsheetID, title string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sheet, err := s.sheet(spreadsheetID, title)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(sheet.Rows) {
		return &meta.ErrNotFound{Type: "Row", ID: fmt.Sprintf("%d", index)}
	}
	sheet.Rows = append(sheet.Rows[:index], sheet.Rows[index+1:]...)
	return nil
}

func (s *Store) spreadsheet(id string) (*spreadsheet, error) {
	ss, ok := s.spreadsheets[id]
	if !ok {
		return nil, &meta.ErrNotFound{Type: "Spreadsheet", ID: id}
	}
	return ss, nil
}

func (s *Store) sheet(spreadsheetID, title string) (*Sheet, error) {
	ss, err := s.spreadsheet(spreadsheetID)
	if err != nil {
		return nil, err
	}
	sheet, ok := ss.sheets[title]
	if !ok {
		return nil, &meta.ErrNotFound{Type: "Sheet", ID: title}
	}
	return sheet, nil
}

func validateCells(sheet *Sheet, row Row) error {
	for column := range row {
		known := false
		for _, existing := range sheet.Columns {
			if existing == column {
				known = true
				break
			}
		}
		if !known {
			return meta.NewErrBadRequest(
				fmt.Sprintf(
					"Sheet %q has no column named %q.",
					sheet.Title,
					column,
				),
			)
		}
	}
	return nil
}

func describe(ss *spreadsheet) Spreadsheet {
	titles := make([]string, len(ss.sheetOrder))
	copy(titles, ss.sheetOrder)
	return Spreadsheet{
		ID:     ss.id,
		Title:  ss.title,
		Sheets: titles,
	}
}
