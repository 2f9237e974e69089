package types

import "strconv"

// Entries returns the summary as ordered label→value rows, in the exact
// order and formatting the Resumen sheet of the exported report uses.
func (s Summary) Entries() []SummaryEntry {
	return []SummaryEntry{
		{Metrica: "Total OTs", Valor: strconv.Itoa(s.TotalOTs)},
		{Metrica: "OTs Facturadas", Valor: strconv.Itoa(s.OTsFacturadas)},
		{Metrica: "OTs en Proceso", Valor: strconv.Itoa(s.OTsEnProceso)},
		{Metrica: "OTs Vencidas", Valor: strconv.Itoa(s.OTsVencidas)},
		{Metrica: "OTs por Vencer", Valor: strconv.Itoa(s.OTsPorVencer)},
		{Metrica: "% Facturación", Valor: formatPct(s.PorcentajeFacturado)},
		{Metrica: "% Reprocesos", Valor: formatPct(s.PorcentajeReprocesos)},
		{Metrica: "Horas Programadas Totales", Valor: formatHours(s.TotalHorasProgramadas)},
		{Metrica: "Desviaciones Positivas", Valor: formatHours(s.HorasDesviacionPositiva)},
		{Metrica: "Desviaciones Negativas", Valor: formatHours(s.HorasDesviacionNegativa)},
	}
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "h"
}
