package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/adimatec/production_dashboard/internal/production/export"
)

func (app *application) handleGetReportExcel(w http.ResponseWriter, r *http.Request) {
	bundle, status, err := app.buildReport(r)
	if err != nil {
		writeJSONError(w, status, err.Error())
		return
	}

	payload, err := export.Bytes(bundle)
	if err != nil {
		app.appLogger.Error(component, "building workbook: %v", err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.FileName(time.Now())))
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (app *application) handleGetOrdersCSV(w http.ResponseWriter, r *http.Request) {
	bundle, status, err := app.buildReport(r)
	if err != nil {
		writeJSONError(w, status, err.Error())
		return
	}

	payload, err := export.OrdersCSV(bundle.Orders)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	serveCSV(w, "ordenes.csv", payload)
}

func (app *application) handleGetProcessesCSV(w http.ResponseWriter, r *http.Request) {
	bundle, status, err := app.buildReport(r)
	if err != nil {
		writeJSONError(w, status, err.Error())
		return
	}

	payload, err := export.ProcessesCSV(bundle.Processes)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	serveCSV(w, "procesos.csv", payload)
}

func serveCSV(w http.ResponseWriter, filename string, payload []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
