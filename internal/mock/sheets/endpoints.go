package sheets

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/adrinr/budibase/internal/lib/restmachinery"
	"github.com/adrinr/budibase/internal/meta"
)

// CreateSpreadsheetRequest names a new spreadsheet.
type CreateSpreadsheetRequest struct {
	Title string `json:"title"`
}

// CreateSheetRequest names a new sheet and its column set.
type CreateSheetRequest struct {
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
}

// RenameSheetRequest carries a sheet's new title.
type RenameSheetRequest struct {
	Title string `json:"title"`
}

type endpoints struct {
	*restmachinery.BaseEndpoints
	store *Store
}

// NewEndpoints returns the mock spreadsheet service's endpoint collection.
// The real service's OAuth handshake is out of scope, so no auth filter is
// applied.
func NewEndpoints(
	baseEndpoints *restmachinery.BaseEndpoints,
	store *Store,
) restmachinery.Endpoints {
	return &endpoints{
		BaseEndpoints: baseEndpoints,
		store:         store,
	}
}

func (e *endpoints) Register(router *mux.Router) {
	// Create spreadsheet
	router.HandleFunc(
		"/api/spreadsheets",
		e.createSpreadsheet,
	).Methods(http.MethodPost)

	// Get spreadsheet
	router.HandleFunc(
		"/api/spreadsheets/{id}",
		e.getSpreadsheet,
	).Methods(http.MethodGet)

	// Add sheet
	router.HandleFunc(
		"/api/spreadsheets/{id}/sheets",
		e.addSheet,
	).Methods(http.MethodPost)

	// Get sheet
	router.HandleFunc(
		"/api/spreadsheets/{id}/sheets/{title}",
		e.getSheet,
	).Methods(http.MethodGet)

	// Rename sheet
	router.HandleFunc(
		"/api/spreadsheets/{id}/sheets/{title}",
		e.renameSheet,
	).Methods(http.MethodPut)

	// Delete sheet
	router.HandleFunc(
		"/api/spreadsheets/{id}/sheets/{title}",
		e.deleteSheet,
	).Methods(http.MethodDelete)

	// Insert row
	router.HandleFunc(
		"/api/spreadsheets/{id}/sheets/{title}/rows",
		e.insertRow,
	).Methods(http.MethodPost)

	// List rows
	router.HandleFunc(
		"/api/spreadsheets/{id}/sheets/{title}/rows",
		e.listRows,
	).Methods(http.MethodGet)

	// Get row
	router.HandleFunc(
		"/api/spreadsheets/{id}/sheets/{title}/rows/{index}",
		e.getRow,
	).Methods(http.MethodGet)

	// Update row
	router.HandleFunc(
		"/api/spreadsheets/{id}/sheets/{title}/rows/{index}",
		e.updateRow,
	).Methods(http.MethodPut)

	// Delete row
	router.HandleFunc(
		"/api/spreadsheets/{id}/sheets/{title}/rows/{index}",
		e.deleteRow,
	).Methods(http.MethodDelete)
}

func (e *endpoints) createSpreadsheet(w http.ResponseWriter, r *http.Request) {
	req := CreateSpreadsheetRequest{}
	e.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: spreadsheetSchemaLoader,
			ReqBodyObj:          &req,
			EndpointLogic: func() (interface{}, error) {
				return e.store.CreateSpreadsheet(req.Title), nil
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (e *endpoints) getSpreadsheet(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return e.store.GetSpreadsheet(mux.Vars(r)["id"])
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) addSheet(w http.ResponseWriter, r *http.Request) {
	req := CreateSheetRequest{}
	e.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: sheetSchemaLoader,
			ReqBodyObj:          &req,
			EndpointLogic: func() (interface{}, error) {
				return e.store.AddSheet(
					mux.Vars(r)["id"],
					req.Title,
					req.Columns,
				)
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (e *endpoints) getSheet(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return e.store.GetSheet(
					mux.Vars(r)["id"],
					mux.Vars(r)["title"],
				)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) renameSheet(w http.ResponseWriter, r *http.Request) {
	req := RenameSheetRequest{}
	e.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: renameSheetSchemaLoader,
			ReqBodyObj:          &req,
			EndpointLogic: func() (interface{}, error) {
				return e.store.RenameSheet(
					mux.Vars(r)["id"],
					mux.Vars(r)["title"],
					req.Title,
				)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) deleteSheet(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				if err := e.store.DeleteSheet(
					mux.Vars(r)["id"],
					mux.Vars(r)["title"],
				); err != nil {
					return nil, err
				}
				return struct{}{}, nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) insertRow(w http.ResponseWriter, r *http.Request) {
	row := Row{}
	e.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: rowSchemaLoader,
			ReqBodyObj:          &row,
			EndpointLogic: func() (interface{}, error) {
				return e.store.InsertRow(
					mux.Vars(r)["id"],
					mux.Vars(r)["title"],
					row,
				)
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (e *endpoints) listRows(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return e.store.ListRows(
					mux.Vars(r)["id"],
					mux.Vars(r)["title"],
				)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) getRow(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				index, err := rowIndex(r)
				if err != nil {
					return nil, err
				}
				return e.store.GetRow(
					mux.Vars(r)["id"],
					mux.Vars(r)["title"],
					index,
				)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) updateRow(w http.ResponseWriter, r *http.Request) {
	row := Row{}
	e.ServeRequest(
		restmachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: rowSchemaLoader,
			ReqBodyObj:          &row,
			EndpointLogic: func() (interface{}, error) {
				index, err := rowIndex(r)
				if err != nil {
					return nil, err
				}
				return e.store.UpdateRow(
					mux.Vars(r)["id"],
					mux.Vars(r)["title"],
					index,
					row,
				)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) deleteRow(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		restmachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				index, err := rowIndex(r)
				if err != nil {
					return nil, err
				}
				if err := e.store.DeleteRow(
					mux.Vars(r)["id"],
					mux.Vars(r)["title"],
					index,
				); err != nil {
					return nil, err
				}
				return struct{}{}, nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func rowIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		return 0, meta.NewErrBadRequest("Row index must be an integer.")
	}
	return index, nil
}
