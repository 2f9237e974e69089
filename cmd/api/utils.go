package main

import (
	"net/http"
	"time"

	"github.com/adimatec/production_dashboard/internal/production/types"
)

func queryOrDefault(r *http.Request, key, defaultStr string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return defaultStr
}

func parseTime(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// selectionFromQuery maps the query string onto a filter selection. Absent
// parameters leave their predicate disabled; a malformed date is a client
// error.
func selectionFromQuery(r *http.Request) (types.FilterSelection, error) {
	sel := types.NewFilterSelection()

	sel.Cliente = queryOrDefault(r, "cliente", types.FilterAll)
	sel.Estatus = queryOrDefault(r, "estatus", types.FilterAll)
	sel.OT = queryOrDefault(r, "ot", types.FilterAll)
	sel.Empleado = queryOrDefault(r, "empleado", types.FilterAll)

	if desde := r.URL.Query().Get("desde"); desde != "" {
		t, err := parseTime(desde)
		if err != nil {
			return sel, err
		}
		sel.FechaDesde = &t
	}
	if hasta := r.URL.Query().Get("hasta"); hasta != "" {
		t, err := parseTime(hasta)
		if err != nil {
			return sel, err
		}
		sel.FechaHasta = &t
	}

	return sel, nil
}
