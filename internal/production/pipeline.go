// Package production wires the derivation stages into the single pipeline
// the dashboard and the export run. Every stage is a pure function over
// immutable inputs, so concurrent runs over the same tables are safe.
package production

import (
	"time"

	"github.com/adimatec/production_dashboard/internal/production/classify"
	"github.com/adimatec/production_dashboard/internal/production/filter"
	"github.com/adimatec/production_dashboard/internal/production/loader"
	"github.com/adimatec/production_dashboard/internal/production/metrics"
	"github.com/adimatec/production_dashboard/internal/production/pareto"
	"github.com/adimatec/production_dashboard/internal/production/types"
)

// Run executes the full derivation chain over already-loaded tables: filter,
// classify, aggregate, deviation split, Pareto ranking, assembly. The caller
// injects "now" so runs are deterministic under test.
func Run(tables *loader.Tables, sel types.FilterSelection, now time.Time) types.ReportBundle {
	orders, processes := filter.Apply(tables.Orders, tables.Processes, sel)

	derived := classify.Derive(orders, tables.Caps, now)

	positiva, negativa := pareto.Split(derived)
	entries := pareto.Rank(negativa)
	critical := pareto.Critical(entries)

	return types.ReportBundle{
		Orders:                derived,
		Processes:             processes,
		Summary:               metrics.Aggregate(derived, positiva, negativa),
		DesviacionesPositivas: positiva,
		DesviacionesNegativas: negativa,
		Pareto:                entries,
		Analisis:              pareto.Analyze(entries, critical),
		OTsCriticas:           pareto.CriticalRecords(negativa, critical),
		Charts: types.ChartData{
			EstadoEntrega: metrics.CountByEstadoEntrega(derived),
			PorCliente:    metrics.CountByCliente(derived),
			PorEstatus:    metrics.CountByEstatus(derived),
		},
		GeneratedAt: now,
	}
}
