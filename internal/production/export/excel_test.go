package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/adimatec/production_dashboard/internal/production/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func floatPtr(v float64) *float64 { return &v }

func sampleBundle() types.ReportBundle {
	fecha := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	orders := []types.DerivedOrderRecord{
		{
			OrderRecord: types.OrderRecord{
				OT: "100", Descripcion: "Soporte motor", Cliente: "ACME",
				Estatus: "EN PROCESO", FechaEntrega: &fecha,
				HorasEstimadas: floatPtr(10), HorasReales: floatPtr(40),
			},
			EstadoEntrega: types.EntregaVencida,
		},
		{
			OrderRecord: types.OrderRecord{
				OT: "101", Cliente: "BETA", Estatus: "FACTURADO",
				HorasEstimadas: floatPtr(20), HorasReales: floatPtr(15),
			},
			EstadoEntrega: types.EntregaCompletada,
		},
	}

	negativa := []types.DeviationRecord{
		{DerivedOrderRecord: orders[0], DiferenciaHoras: 30},
	}

	return types.ReportBundle{
		Orders: orders,
		Processes: []types.ProcessRecord{
			{OT: "100", HorasEstimadas: floatPtr(5)},
		},
		Summary:               types.Summary{TotalOTs: 2, OTsFacturadas: 1, PorcentajeFacturado: 50},
		DesviacionesNegativas: negativa,
		OTsCriticas:           negativa,
		GeneratedAt:           fecha,
	}
}

func TestWorkbookSheets(t *testing.T) {
	f, err := Workbook(sampleBundle())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"OT_Master", "Procesos", "Resumen", "OTs_Criticas"}, f.GetSheetList())

	got, err := f.GetCellValue("OT_Master", "A2")
	require.NoError(t, err)
	assert.Equal(t, "100", got)

	got, err = f.GetCellValue("OT_Master", "F2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", got)

	got, err = f.GetCellValue("OT_Master", "L2")
	require.NoError(t, err)
	assert.Equal(t, "Vencida", got)

	got, err = f.GetCellValue("Resumen", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Total OTs", got)
	got, err = f.GetCellValue("Resumen", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	got, err = f.GetCellValue("OTs_Criticas", "E2")
	require.NoError(t, err)
	assert.Equal(t, "30", got)
}

func TestWorkbookSkipsCriticalSheetWhenNoOverrun(t *testing.T) {
	bundle := sampleBundle()
	bundle.DesviacionesNegativas = nil
	bundle.OTsCriticas = nil

	f, err := Workbook(bundle)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"OT_Master", "Procesos", "Resumen"}, f.GetSheetList())
}

func TestBytesRoundTrips(t *testing.T) {
	payload, err := Bytes(sampleBundle())
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("OT_Master", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ot", got)
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "Reporte_Adimatec_20250315.xlsx", FileName(now))
}
