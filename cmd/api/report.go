package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/adimatec/production_dashboard/internal/production"
	"github.com/adimatec/production_dashboard/internal/production/loader"
	"github.com/adimatec/production_dashboard/internal/production/types"
	"github.com/adimatec/production_dashboard/internal/response"
)

const component = "api"

// buildReport runs the whole chain for one request: fetch the raw tables,
// load them into typed records and derive the bundle for the requested
// filters. The HTTP status accompanies the error so handlers stay thin.
func (app *application) buildReport(r *http.Request) (types.ReportBundle, int, error) {
	sel, err := selectionFromQuery(r)
	if err != nil {
		return types.ReportBundle{}, http.StatusBadRequest, err
	}

	ordersDf, processesDf, err := app.source.FetchRawTables(r.Context())
	if err != nil {
		app.appLogger.Error(component, "fetching raw tables: %v", err)
		return types.ReportBundle{}, http.StatusBadGateway, err
	}

	tables, err := loader.Load(ordersDf, processesDf)
	if err != nil {
		var schemaErr *loader.SchemaError
		if errors.As(err, &schemaErr) {
			app.appLogger.Error(component, "schema mismatch: %v", schemaErr)
		}
		return types.ReportBundle{}, http.StatusInternalServerError, err
	}

	return production.Run(tables, sel, time.Now()), http.StatusOK, nil
}

func (app *application) handleGetReport(w http.ResponseWriter, r *http.Request) {
	bundle, status, err := app.buildReport(r)
	if err != nil {
		writeJSONError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, &response.APIResponse[types.ReportBundle]{
		Success: true,
		Data:    bundle,
	})
}

func (app *application) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	bundle, status, err := app.buildReport(r)
	if err != nil {
		writeJSONError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, &response.APIResponse[[]types.SummaryEntry]{
		Success: true,
		Data:    bundle.Summary.Entries(),
	})
}

func (app *application) handleGetCharts(w http.ResponseWriter, r *http.Request) {
	bundle, status, err := app.buildReport(r)
	if err != nil {
		writeJSONError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, &response.APIResponse[types.ChartData]{
		Success: true,
		Data:    bundle.Charts,
	})
}
