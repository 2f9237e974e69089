package main

import (
	"context"
	"flag"
	"time"

	"github.com/adimatec/production_dashboard/internal/env"
	"github.com/adimatec/production_dashboard/internal/logger"
	"github.com/adimatec/production_dashboard/internal/production"
	"github.com/adimatec/production_dashboard/internal/production/export"
	"github.com/adimatec/production_dashboard/internal/production/loader"
	"github.com/adimatec/production_dashboard/internal/production/sheets"
	"github.com/adimatec/production_dashboard/internal/production/types"
	"github.com/joho/godotenv"
)

const component = "cli"

// One-shot report run: fetch the tables, derive the bundle for the given
// filters and write the workbook. The API under cmd/api serves the same
// pipeline to the dashboard.
func main() {
	_ = godotenv.Load()

	var (
		cliente  = flag.String("cliente", types.FilterAll, "filter by client")
		estatus  = flag.String("estatus", types.FilterAll, "filter by OT status")
		ot       = flag.String("ot", types.FilterAll, "filter by OT number")
		empleado = flag.String("empleado", types.FilterAll, "filter by employee (matches process records)")
		desde    = flag.String("desde", "", "delivery date range start (YYYY-MM-DD)")
		hasta    = flag.String("hasta", "", "delivery date range end (YYYY-MM-DD)")

		ordersCSV   = flag.String("orders-csv", "", "read the OT master from a local CSV instead of Google Sheets")
		procesosCSV = flag.String("procesos-csv", "", "read the process records from a local CSV instead of Google Sheets")
		latin1      = flag.Bool("latin1", env.GetBool("LATIN1", false), "decode local CSV files as Windows-1252")
		out         = flag.String("out", "", "output path for the workbook (default Reporte_Adimatec_<date>.xlsx)")
	)
	flag.Parse()

	appLogger := logger.New(logger.ParseLevel(env.GetString("LOG_LEVEL", "INFO")))

	sel := types.NewFilterSelection()
	sel.Cliente = *cliente
	sel.Estatus = *estatus
	sel.OT = *ot
	sel.Empleado = *empleado

	if *desde != "" {
		t, err := time.Parse("2006-01-02", *desde)
		if err != nil {
			appLogger.Fatal(component, "invalid -desde value %q: %v", *desde, err)
		}
		sel.FechaDesde = &t
	}
	if *hasta != "" {
		t, err := time.Parse("2006-01-02", *hasta)
		if err != nil {
			appLogger.Fatal(component, "invalid -hasta value %q: %v", *hasta, err)
		}
		sel.FechaHasta = &t
	}

	var source sheets.Source
	if *ordersCSV != "" || *procesosCSV != "" {
		if *ordersCSV == "" || *procesosCSV == "" {
			appLogger.Fatal(component, "-orders-csv and -procesos-csv must be given together")
		}
		source = sheets.LocalSource{
			OrdersPath:    *ordersCSV,
			ProcessesPath: *procesosCSV,
			Latin1:        *latin1,
		}
	} else {
		source = sheets.NewSheetsSource(
			env.GetString("SHEET_ID", sheets.DefaultSheetID),
			env.GetString("ORDERS_GID", sheets.DefaultOrdersGID),
			env.GetString("PROCESSES_GID", sheets.DefaultProcessesGID),
			env.GetDuration("CACHE_TTL", sheets.DefaultTTL),
			appLogger,
		)
	}

	ordersDf, processesDf, err := source.FetchRawTables(context.Background())
	if err != nil {
		appLogger.Fatal(component, "fetching raw tables: %v", err)
	}

	tables, err := loader.Load(ordersDf, processesDf)
	if err != nil {
		appLogger.Fatal(component, "loading tables: %v", err)
	}

	now := time.Now()
	bundle := production.Run(tables, sel, now)

	for _, entry := range bundle.Summary.Entries() {
		appLogger.Info(component, "%s: %s", entry.Metrica, entry.Valor)
	}
	appLogger.Info(component, "OTs criticas (Pareto 80/20): %d de %d con desviacion negativa",
		len(bundle.OTsCriticas), len(bundle.DesviacionesNegativas))

	path := *out
	if path == "" {
		path = export.FileName(now)
	}
	if err := export.WriteFile(bundle, path); err != nil {
		appLogger.Fatal(component, "writing workbook: %v", err)
	}
	appLogger.Info(component, "report written to %s", path)
}
