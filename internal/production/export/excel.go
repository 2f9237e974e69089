// Package export serializes a report bundle into the multi-sheet Excel
// workbook and the CSV downloads the dashboard offers.
package export

import (
	"fmt"
	"time"

	"github.com/adimatec/production_dashboard/internal/production/types"
	"github.com/xuri/excelize/v2"
)

const (
	sheetOrders    = "OT_Master"
	sheetProcesses = "Procesos"
	sheetSummary   = "Resumen"
	sheetCritical  = "OTs_Criticas"
)

const dateLayout = "2006-01-02"

var orderHeaders = []string{
	"ot", "descripcion", "cliente", "estatus", "orden_compra",
	"fecha_entrega", "fecha_impresion", "fecha_terminado", "fecha_entregada",
	"horas_estimadas_ot", "horas_reales_ot", "estado_entrega", "es_reproceso",
}

var processHeaders = []string{
	"ot", "proceso", "empleado_1", "empleado_2",
	"fecha_inicio_1", "fecha_inicio_2", "horas_estimadas", "horas_reales",
}

var criticalHeaders = []string{
	"ot", "cliente", "horas_estimadas_ot", "horas_reales_ot", "diferencia_horas",
}

// Workbook builds the report file: OT_Master, Procesos and Resumen always,
// OTs_Criticas only when the negative-deviation set is non-empty. Callers
// own closing the returned file.
func Workbook(bundle types.ReportBundle) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetOrders)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeOrdersSheet(f, bundle.Orders, headerStyle); err != nil {
		return nil, err
	}
	if err := writeProcessesSheet(f, bundle.Processes, headerStyle); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, bundle.Summary, headerStyle); err != nil {
		return nil, err
	}
	if len(bundle.DesviacionesNegativas) > 0 {
		if err := writeCriticalSheet(f, bundle.OTsCriticas, headerStyle); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Bytes renders the workbook into an in-memory buffer for HTTP downloads.
func Bytes(bundle types.ReportBundle) ([]byte, error) {
	f, err := Workbook(bundle)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the workbook to disk, for the one-shot CLI.
func WriteFile(bundle types.ReportBundle, path string) error {
	f, err := Workbook(bundle)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// FileName builds the download name the dashboard has always used.
func FileName(now time.Time) string {
	return fmt.Sprintf("Reporte_Adimatec_%s.xlsx", now.Format("20060102"))
}

func writeOrdersSheet(f *excelize.File, orders []types.DerivedOrderRecord, headerStyle int) error {
	if err := writeHeader(f, sheetOrders, orderHeaders, headerStyle); err != nil {
		return err
	}
	for rowIdx, o := range orders {
		row := []any{
			o.OT, o.Descripcion, o.Cliente, o.Estatus, strPtrCell(o.OrdenCompra),
			dateCell(o.FechaEntrega), dateCell(o.FechaImpresion),
			dateCell(o.FechaTerminado), dateCell(o.FechaEntregada),
			floatPtrCell(o.HorasEstimadas), floatPtrCell(o.HorasReales),
			string(o.EstadoEntrega), o.EsReproceso,
		}
		if err := writeRow(f, sheetOrders, rowIdx+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeProcessesSheet(f *excelize.File, processes []types.ProcessRecord, headerStyle int) error {
	if _, err := f.NewSheet(sheetProcesses); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetProcesses, err)
	}
	if err := writeHeader(f, sheetProcesses, processHeaders, headerStyle); err != nil {
		return err
	}
	for rowIdx, p := range processes {
		row := []any{
			p.OT, strPtrCell(p.Proceso), strPtrCell(p.Empleado1), strPtrCell(p.Empleado2),
			dateCell(p.FechaInicio1), dateCell(p.FechaInicio2),
			floatPtrCell(p.HorasEstimadas), floatPtrCell(p.HorasReales),
		}
		if err := writeRow(f, sheetProcesses, rowIdx+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary types.Summary, headerStyle int) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetSummary, err)
	}
	if err := writeHeader(f, sheetSummary, []string{"Métrica", "Valor"}, headerStyle); err != nil {
		return err
	}
	for rowIdx, entry := range summary.Entries() {
		if err := writeRow(f, sheetSummary, rowIdx+2, []any{entry.Metrica, entry.Valor}); err != nil {
			return err
		}
	}
	return nil
}

func writeCriticalSheet(f *excelize.File, critical []types.DeviationRecord, headerStyle int) error {
	if _, err := f.NewSheet(sheetCritical); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetCritical, err)
	}
	if err := writeHeader(f, sheetCritical, criticalHeaders, headerStyle); err != nil {
		return err
	}
	for rowIdx, d := range critical {
		row := []any{
			d.OT, d.Cliente,
			floatPtrCell(d.HorasEstimadas), floatPtrCell(d.HorasReales),
			d.DiferenciaHoras,
		}
		if err := writeRow(f, sheetCritical, rowIdx+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, name := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header %s!%s: %w", sheet, cell, err)
		}
	}

	lastCol, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, style); err != nil {
		return fmt.Errorf("style header %s: %w", sheet, err)
	}

	// Keep the header visible while scrolling.
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	}); err != nil {
		return fmt.Errorf("freeze header %s: %w", sheet, err)
	}

	if err := f.SetColWidth(sheet, "A", "M", 16); err != nil {
		return fmt.Errorf("set column width %s: %w", sheet, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func strPtrCell(s *string) any {
	if s == nil {
		return ""
	}
	return *s
}

func floatPtrCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func dateCell(t *time.Time) any {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
