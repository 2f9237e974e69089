package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryEntries(t *testing.T) {
	s := Summary{
		TotalOTs:                3,
		OTsFacturadas:           1,
		OTsEnProceso:            2,
		OTsVencidas:             1,
		OTsPorVencer:            1,
		PorcentajeFacturado:     33.333333,
		TotalReprocesos:         1,
		PorcentajeReprocesos:    33.333333,
		TotalHorasProgramadas:   30,
		HorasDesviacionPositiva: 8,
		HorasDesviacionNegativa: 30,
	}

	entries := s.Entries()
	require.Len(t, entries, 10)

	want := []SummaryEntry{
		{Metrica: "Total OTs", Valor: "3"},
		{Metrica: "OTs Facturadas", Valor: "1"},
		{Metrica: "OTs en Proceso", Valor: "2"},
		{Metrica: "OTs Vencidas", Valor: "1"},
		{Metrica: "OTs por Vencer", Valor: "1"},
		{Metrica: "% Facturación", Valor: "33.3%"},
		{Metrica: "% Reprocesos", Valor: "33.3%"},
		{Metrica: "Horas Programadas Totales", Valor: "30.0h"},
		{Metrica: "Desviaciones Positivas", Valor: "8.0h"},
		{Metrica: "Desviaciones Negativas", Valor: "30.0h"},
	}
	assert.Equal(t, want, entries)
}
