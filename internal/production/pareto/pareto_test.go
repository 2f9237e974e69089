package pareto

import (
	"testing"

	"github.com/adimatec/production_dashboard/internal/production/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func orderWithHours(ot string, estimadas, reales float64) types.DerivedOrderRecord {
	return types.DerivedOrderRecord{
		OrderRecord: types.OrderRecord{
			OT:             ot,
			Estatus:        "EN PROCESO",
			HorasEstimadas: floatPtr(estimadas),
			HorasReales:    floatPtr(reales),
		},
	}
}

func negativeSet(diffs map[string]float64) []types.DeviationRecord {
	var out []types.DeviationRecord
	for ot, diff := range diffs {
		out = append(out, types.DeviationRecord{
			DerivedOrderRecord: types.DerivedOrderRecord{
				OrderRecord: types.OrderRecord{OT: ot},
			},
			DiferenciaHoras: diff,
		})
	}
	return out
}

func TestSplit(t *testing.T) {
	orders := []types.DerivedOrderRecord{
		orderWithHours("100", 10, 8),  // under estimate
		orderWithHours("101", 10, 10), // exactly on estimate
		orderWithHours("102", 10, 15), // over estimate
		{OrderRecord: types.OrderRecord{OT: "103", HorasEstimadas: floatPtr(10)}}, // missing actual
	}

	positiva, negativa := Split(orders)

	require.Len(t, positiva, 2)
	assert.Equal(t, "100", positiva[0].OT)
	assert.Equal(t, -2.0, positiva[0].DiferenciaHoras)
	assert.Equal(t, "101", positiva[1].OT)
	assert.Zero(t, positiva[1].DiferenciaHoras)

	require.Len(t, negativa, 1)
	assert.Equal(t, "102", negativa[0].OT)
	assert.Equal(t, 5.0, negativa[0].DiferenciaHoras)
}

func TestRank(t *testing.T) {
	entries := Rank(negativeSet(map[string]float64{
		"A": 50, "B": 30, "C": 10, "D": 5, "E": 5,
	}))

	require.Len(t, entries, 5)
	assert.Equal(t, "A", entries[0].OT)
	assert.InDelta(t, 50, entries[0].PorcentajeAcumulado, 1e-9)
	assert.InDelta(t, 80, entries[1].PorcentajeAcumulado, 1e-9)
	assert.InDelta(t, 90, entries[2].PorcentajeAcumulado, 1e-9)
	assert.InDelta(t, 95, entries[3].PorcentajeAcumulado, 1e-9)
	assert.InDelta(t, 100, entries[4].PorcentajeAcumulado, 1e-9)

	// Non-increasing differences, non-decreasing cumulative percentage.
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].DiferenciaHoras, entries[i].DiferenciaHoras)
		assert.LessOrEqual(t, entries[i-1].PorcentajeAcumulado, entries[i].PorcentajeAcumulado)
	}
}

func TestRankEmpty(t *testing.T) {
	assert.Nil(t, Rank(nil))
}

func TestCritical(t *testing.T) {
	entries := Rank(negativeSet(map[string]float64{
		"A": 50, "B": 30, "C": 10, "D": 5, "E": 5,
	}))

	// A sits at 50%, B at exactly 80%; C at 90% is the first excluded entry.
	critical := Critical(entries)
	require.Len(t, critical, 2)
	assert.Equal(t, "A", critical[0].OT)
	assert.Equal(t, "B", critical[1].OT)
}

func TestCriticalSingleDominantEntry(t *testing.T) {
	// One entry carrying 90% of the overrun exceeds the threshold on its own,
	// leaving the critical set empty.
	entries := Rank(negativeSet(map[string]float64{"A": 90, "B": 10}))
	assert.Empty(t, Critical(entries))
}

func TestAnalyze(t *testing.T) {
	entries := Rank(negativeSet(map[string]float64{
		"A": 50, "B": 30, "C": 10, "D": 5, "E": 5,
	}))
	critical := Critical(entries)

	analysis := Analyze(entries, critical)
	assert.Equal(t, 2, analysis.OTsCriticas)
	assert.InDelta(t, 40, analysis.PorcentajeOTs, 1e-9)
	assert.InDelta(t, 80, analysis.HorasRepresentadas, 1e-9)
}

func TestAnalyzeEmpty(t *testing.T) {
	analysis := Analyze(nil, nil)
	assert.Zero(t, analysis.OTsCriticas)
	assert.Zero(t, analysis.PorcentajeOTs)
	assert.Zero(t, analysis.HorasRepresentadas)
}

func TestCriticalRecords(t *testing.T) {
	negativa := negativeSet(map[string]float64{
		"A": 50, "B": 30, "C": 20,
	})
	entries := Rank(negativa)
	critical := Critical(entries)

	records := CriticalRecords(negativa, critical)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].OT)
	assert.Equal(t, "B", records[1].OT)
}
