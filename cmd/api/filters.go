package main

import (
	"net/http"

	"github.com/adimatec/production_dashboard/internal/production/filter"
	"github.com/adimatec/production_dashboard/internal/production/loader"
	"github.com/adimatec/production_dashboard/internal/production/types"
	"github.com/adimatec/production_dashboard/internal/response"
)

// Filter options always come from the unfiltered tables, so the sidebar
// keeps offering every value regardless of the current selection.
func (app *application) handleGetFilterOptions(w http.ResponseWriter, r *http.Request) {
	ordersDf, processesDf, err := app.source.FetchRawTables(r.Context())
	if err != nil {
		app.appLogger.Error(component, "fetching raw tables: %v", err)
		writeJSONError(w, http.StatusBadGateway, err.Error())
		return
	}

	tables, err := loader.Load(ordersDf, processesDf)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, &response.APIResponse[types.FilterOptions]{
		Success: true,
		Data:    filter.Options(tables.Orders, tables.Processes),
	})
}
