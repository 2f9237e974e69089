package main

import (
	"log"
	"time"

	"github.com/adimatec/production_dashboard/internal/env"
	"github.com/adimatec/production_dashboard/internal/logger"
	"github.com/adimatec/production_dashboard/internal/production/sheets"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine, the defaults cover local runs.
	_ = godotenv.Load()

	cfg := config{
		addr:           env.GetString("ADDR", ":8080"),
		corsOrigins:    env.GetString("CORS_ORIGINS", "http://localhost:5173"),
		requestTimeout: time.Duration(env.GetInt("REQUEST_TIMEOUT_SECONDS", 60)) * time.Second,
		sheets: sheetsConfig{
			sheetID:      env.GetString("SHEET_ID", sheets.DefaultSheetID),
			ordersGID:    env.GetString("ORDERS_GID", sheets.DefaultOrdersGID),
			processesGID: env.GetString("PROCESSES_GID", sheets.DefaultProcessesGID),
			cacheTTL:     env.GetDuration("CACHE_TTL", sheets.DefaultTTL),
		},
	}

	appLogger := logger.New(logger.ParseLevel(env.GetString("LOG_LEVEL", "INFO")))

	source := sheets.NewSheetsSource(
		cfg.sheets.sheetID,
		cfg.sheets.ordersGID,
		cfg.sheets.processesGID,
		cfg.sheets.cacheTTL,
		appLogger,
	)

	app := &application{
		config:    cfg,
		source:    source,
		appLogger: appLogger,
	}

	mux := app.mount()

	log.Fatal(app.run(mux))
}
