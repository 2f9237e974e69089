package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/adimatec/production_dashboard/internal/logger"
	"github.com/adimatec/production_dashboard/internal/production/sheets"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type application struct {
	config    config
	source    sheets.Source
	appLogger *logger.Logger
}

type config struct {
	addr           string
	corsOrigins    string
	requestTimeout time.Duration
	sheets         sheetsConfig
}

type sheetsConfig struct {
	sheetID      string
	ordersGID    string
	processesGID string
	cacheTTL     time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	// The dashboard frontend runs on its own origin.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(app.config.corsOrigins, ","),
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	r.Use(corsHandler.Handler)

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(app.config.requestTimeout))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.Route("/report", func(r chi.Router) {
			r.Get("/", app.handleGetReport)
			r.Get("/summary", app.handleGetSummary)
			r.Get("/charts", app.handleGetCharts)
			r.Get("/excel", app.handleGetReportExcel)
			r.Get("/orders.csv", app.handleGetOrdersCSV)
			r.Get("/procesos.csv", app.handleGetProcessesCSV)
		})
		r.Route("/filters", func(r chi.Router) {
			r.Get("/options", app.handleGetFilterOptions)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 120,
		ReadTimeout:  time.Second * 40,
		IdleTimeout:  time.Minute,
	}

	log.Printf("Server started on %s", app.config.addr)
	return srv.ListenAndServe()
}
