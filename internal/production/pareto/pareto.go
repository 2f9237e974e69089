// Package pareto splits orders by hours deviation and ranks the unfavorable
// ones to find the subset driving most of the overrun.
package pareto

import (
	"sort"

	"github.com/adimatec/production_dashboard/internal/production/types"
	"gonum.org/v1/gonum/floats"
)

// CriticalThreshold is the cumulative-percentage cutoff of the 80/20 rule.
const CriticalThreshold = 80.0

// Split classifies every order carrying both hours fields. A difference of
// zero or less means the estimate was met or beaten, which operationally is
// the favorable ("positiva") outcome despite the arithmetic sign.
func Split(orders []types.DerivedOrderRecord) (positiva, negativa []types.DeviationRecord) {
	for _, o := range orders {
		if o.HorasEstimadas == nil || o.HorasReales == nil {
			continue
		}
		rec := types.DeviationRecord{
			DerivedOrderRecord: o,
			DiferenciaHoras:    *o.HorasReales - *o.HorasEstimadas,
		}
		if rec.DiferenciaHoras <= 0 {
			positiva = append(positiva, rec)
		} else {
			negativa = append(negativa, rec)
		}
	}
	return positiva, negativa
}

// Rank sorts the negative-deviation set descending by difference and attaches
// the cumulative percentage of the total overrun. Empty input yields nil.
func Rank(negativa []types.DeviationRecord) []types.ParetoEntry {
	if len(negativa) == 0 {
		return nil
	}

	ordered := make([]types.DeviationRecord, len(negativa))
	copy(ordered, negativa)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DiferenciaHoras > ordered[j].DiferenciaHoras
	})

	diffs := make([]float64, len(ordered))
	for i, d := range ordered {
		diffs[i] = d.DiferenciaHoras
	}
	total := floats.Sum(diffs)

	entries := make([]types.ParetoEntry, len(ordered))
	cum := 0.0
	for i, d := range ordered {
		cum += d.DiferenciaHoras
		pct := 0.0
		if total > 0 {
			pct = cum / total * 100
		}
		entries[i] = types.ParetoEntry{
			OT:                  d.OT,
			DiferenciaHoras:     d.DiferenciaHoras,
			PorcentajeAcumulado: pct,
		}
	}
	return entries
}

// Critical takes the maximal prefix whose entries each sit at or below the
// threshold. The membership test is per element: the first entry whose own
// cumulative percentage exceeds 80 is excluded, even if no earlier entry
// reached 80.
func Critical(entries []types.ParetoEntry) []types.ParetoEntry {
	var critical []types.ParetoEntry
	for _, e := range entries {
		if e.PorcentajeAcumulado > CriticalThreshold {
			break
		}
		critical = append(critical, e)
	}
	return critical
}

// Analyze summarizes the critical subset against the whole negative set.
func Analyze(entries, critical []types.ParetoEntry) types.ParetoAnalysis {
	analysis := types.ParetoAnalysis{OTsCriticas: len(critical)}
	if len(entries) > 0 {
		analysis.PorcentajeOTs = float64(len(critical)) / float64(len(entries)) * 100
	}
	for _, e := range critical {
		analysis.HorasRepresentadas += e.DiferenciaHoras
	}
	return analysis
}

// CriticalRecords returns the full negative-deviation rows whose OT made the
// critical prefix, sorted worst first for display and export.
func CriticalRecords(negativa []types.DeviationRecord, critical []types.ParetoEntry) []types.DeviationRecord {
	ids := make(map[string]struct{}, len(critical))
	for _, e := range critical {
		ids[e.OT] = struct{}{}
	}

	var records []types.DeviationRecord
	for _, d := range negativa {
		if _, ok := ids[d.OT]; ok {
			records = append(records, d)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DiferenciaHoras > records[j].DiferenciaHoras
	})
	return records
}
