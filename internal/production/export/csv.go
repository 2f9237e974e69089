package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/adimatec/production_dashboard/internal/production/types"
)

// OrdersCSV renders the filtered order table, derived columns included, as a
// CSV download.
func OrdersCSV(orders []types.DerivedOrderRecord) ([]byte, error) {
	rows := make([][]string, 0, len(orders)+1)
	rows = append(rows, orderHeaders)
	for _, o := range orders {
		rows = append(rows, []string{
			o.OT, o.Descripcion, o.Cliente, o.Estatus, strPtrField(o.OrdenCompra),
			dateField(o.FechaEntrega), dateField(o.FechaImpresion),
			dateField(o.FechaTerminado), dateField(o.FechaEntregada),
			floatPtrField(o.HorasEstimadas), floatPtrField(o.HorasReales),
			string(o.EstadoEntrega), strconv.FormatBool(o.EsReproceso),
		})
	}
	return writeCSV(rows)
}

// ProcessesCSV renders the filtered process table as a CSV download.
func ProcessesCSV(processes []types.ProcessRecord) ([]byte, error) {
	rows := make([][]string, 0, len(processes)+1)
	rows = append(rows, processHeaders)
	for _, p := range processes {
		rows = append(rows, []string{
			p.OT, strPtrField(p.Proceso), strPtrField(p.Empleado1), strPtrField(p.Empleado2),
			dateField(p.FechaInicio1), dateField(p.FechaInicio2),
			floatPtrField(p.HorasEstimadas), floatPtrField(p.HorasReales),
		})
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func strPtrField(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatPtrField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func dateField(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
