// Package metrics computes the scalar dashboard metrics and the label/count
// rows behind the charts.
package metrics

import (
	"sort"

	"github.com/adimatec/production_dashboard/internal/production/classify"
	"github.com/adimatec/production_dashboard/internal/production/types"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
)

// Aggregate computes the summary over the filtered, classified order set.
// The deviation subsets come from pareto.Split so hours are only summed over
// orders that carry both hours fields. Every ratio guards the zero
// denominator and yields 0 instead.
func Aggregate(orders []types.DerivedOrderRecord, positiva, negativa []types.DeviationRecord) types.Summary {
	s := types.Summary{TotalOTs: len(orders)}

	for _, o := range orders {
		switch o.Estatus {
		case "FACTURADO":
			s.OTsFacturadas++
		case "EN PROCESO":
			s.OTsEnProceso++
		}
		// Double guard: a terminal status never counts as overdue or due
		// soon even if its stored classification says otherwise.
		if !classify.IsEstadoTerminal(o.Estatus) {
			switch o.EstadoEntrega {
			case types.EntregaVencida:
				s.OTsVencidas++
			case types.EntregaPorVencer:
				s.OTsPorVencer++
			}
		}
		if o.EsReproceso {
			s.TotalReprocesos++
		}
	}

	s.PorcentajeFacturado = pct(float64(s.OTsFacturadas), float64(s.TotalOTs))
	s.PorcentajeReprocesos = pct(float64(s.TotalReprocesos), float64(s.TotalOTs))

	estimadas := hoursOf(positiva, estimated)
	estimadas = append(estimadas, hoursOf(negativa, estimated)...)
	s.TotalHorasProgramadas = floats.Sum(estimadas)
	s.HorasDesviacionPositiva = floats.Sum(hoursOf(positiva, actual))
	s.HorasDesviacionNegativa = floats.Sum(hoursOf(negativa, actual))
	s.PorcentajePositivo = pct(s.HorasDesviacionPositiva, s.TotalHorasProgramadas)
	s.PorcentajeNegativo = pct(s.HorasDesviacionNegativa, s.TotalHorasProgramadas)

	return s
}

type hoursField int

const (
	estimated hoursField = iota
	actual
)

func hoursOf(records []types.DeviationRecord, field hoursField) []float64 {
	return lo.Map(records, func(d types.DeviationRecord, _ int) float64 {
		if field == estimated {
			return *d.HorasEstimadas
		}
		return *d.HorasReales
	})
}

func pct(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// CountByCliente mirrors the "OTs por Cliente" pie chart.
func CountByCliente(orders []types.DerivedOrderRecord) []types.ChartRow {
	return countRows(lo.CountValuesBy(orders, func(o types.DerivedOrderRecord) string {
		return o.Cliente
	}))
}

// CountByEstatus mirrors the "OTs por Estatus" bar chart.
func CountByEstatus(orders []types.DerivedOrderRecord) []types.ChartRow {
	return countRows(lo.CountValuesBy(orders, func(o types.DerivedOrderRecord) string {
		return o.Estatus
	}))
}

// CountByEstadoEntrega counts only active overdue and due-soon orders, which
// is what the delivery-state chart shows.
func CountByEstadoEntrega(orders []types.DerivedOrderRecord) []types.ChartRow {
	active := lo.Filter(orders, func(o types.DerivedOrderRecord, _ int) bool {
		return !classify.IsEstadoTerminal(o.Estatus) &&
			(o.EstadoEntrega == types.EntregaVencida || o.EstadoEntrega == types.EntregaPorVencer)
	})
	return countRows(lo.CountValuesBy(active, func(o types.DerivedOrderRecord) string {
		return string(o.EstadoEntrega)
	}))
}

func countRows(counts map[string]int) []types.ChartRow {
	rows := make([]types.ChartRow, 0, len(counts))
	for label, count := range counts {
		rows = append(rows, types.ChartRow{Label: label, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}
