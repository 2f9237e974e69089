// Package sheets supplies the two raw tables the pipeline consumes. The
// production feed lives in a Google Sheets workbook exposed through its CSV
// export endpoint; a local-file source covers offline runs and tests.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/adimatec/production_dashboard/internal/logger"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	DefaultSheetID      = "17eEYewfzoBZXkFWBm5DOJp3IuvHg9WvN"
	DefaultOrdersGID    = "525532145"
	DefaultProcessesGID = "240160734"

	// DefaultTTL bounds how long a fetched pair of tables is reused before
	// the next call refetches from the sheet.
	DefaultTTL = 5 * time.Minute
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// Source supplies the two raw tables as dataframes. Callers never learn
// whether a call was served from cache or refetched.
type Source interface {
	FetchRawTables(ctx context.Context) (orders, processes dataframe.DataFrame, err error)
}

type SheetsSource struct {
	sheetID      string
	ordersGID    string
	processesGID string
	ttl          time.Duration
	client       *http.Client
	appLogger    *logger.Logger

	mu        sync.Mutex
	orders    dataframe.DataFrame
	processes dataframe.DataFrame
	fetchedAt time.Time
}

func NewSheetsSource(sheetID, ordersGID, processesGID string, ttl time.Duration, appLogger *logger.Logger) *SheetsSource {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SheetsSource{
		sheetID:      sheetID,
		ordersGID:    ordersGID,
		processesGID: processesGID,
		ttl:          ttl,
		client:       &http.Client{Timeout: 30 * time.Second},
		appLogger:    appLogger,
	}
}

func (s *SheetsSource) exportURL(gid string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", s.sheetID, gid)
}

// FetchRawTables returns the cached tables while they are fresh, otherwise
// refetches both. Both tables always come from the same fetch so they stay
// mutually consistent.
func (s *SheetsSource) FetchRawTables(ctx context.Context) (dataframe.DataFrame, dataframe.DataFrame, error) {
	const component = "SheetsSource"

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.ttl {
		s.appLogger.Debug(component, "Serving cached tables: age=%s ttl=%s", time.Since(s.fetchedAt), s.ttl)
		return s.orders, s.processes, nil
	}

	orders, err := s.fetchCSV(ctx, s.ordersGID)
	if err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, fmt.Errorf("fetch ot_master: %w", err)
	}

	processes, err := s.fetchCSV(ctx, s.processesGID)
	if err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, fmt.Errorf("fetch procesos: %w", err)
	}

	s.orders = orders
	s.processes = processes
	s.fetchedAt = time.Now()

	s.appLogger.Info(component, "Tables fetched: orders=%d processes=%d", orders.Nrow(), processes.Nrow())
	return s.orders, s.processes, nil
}

func (s *SheetsSource) fetchCSV(ctx context.Context, gid string) (dataframe.DataFrame, error) {
	const component = "SheetsSource"
	url := s.exportURL(gid)

	s.appLogger.Debug(component, "Starting download: gid=%s url=%s", gid, url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.appLogger.Warn(component, "Non-OK HTTP response: gid=%s status=%s", gid, resp.Status)
		return dataframe.DataFrame{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return readTable(resp.Body)
}

// readTable parses one CSV tab. The ot column is forced to string so that
// numeric-looking identifiers keep their leading zeros; it is the join key
// between both tables.
func readTable(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithLazyQuotes(true),
		dataframe.WithTypes(map[string]series.Type{"ot": series.String}),
	)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse CSV: %w", df.Error())
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe is empty")
	}

	return df, nil
}
