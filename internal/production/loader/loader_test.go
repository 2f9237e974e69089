package loader

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(t *testing.T, csv string) dataframe.DataFrame {
	t.Helper()
	df := dataframe.ReadCSV(strings.NewReader(csv))
	require.NoError(t, df.Error())
	return df
}

const ordersCSV = `ot,descripcion,cliente,estatus,orden_compra,fecha_entrega,horas_estimadas_ot,horas_reales_ot
100,Soporte motor,ACME,EN PROCESO,OC-1,2025-03-15,10,8
101,Eje principal,ACME,FACTURADO,GARANTIA OC-2,2025-02-01,20,30
,fila sin ot,ACME,EN PROCESO,,,,
102,Placa base,BETA,OK,,2025-04-01,5,5
`

const processesCSV = `ot,proceso,empleado_1,empleado_2
100,Torno,JUAN PEREZ,
100,Fresado,maria lopez,juan perez
102,Corte,PEDRO GOMEZ,
`

func TestLoad(t *testing.T) {
	tables, err := Load(frame(t, ordersCSV), frame(t, processesCSV))
	require.NoError(t, err)

	// The row without an OT is dropped.
	require.Len(t, tables.Orders, 3)
	assert.Equal(t, "100", tables.Orders[0].OT)
	assert.Equal(t, "ACME", tables.Orders[0].Cliente)
	assert.Equal(t, "EN PROCESO", tables.Orders[0].Estatus)
	require.NotNil(t, tables.Orders[0].HorasEstimadas)
	assert.Equal(t, 10.0, *tables.Orders[0].HorasEstimadas)
	require.NotNil(t, tables.Orders[0].FechaEntrega)

	require.Len(t, tables.Processes, 3)
	require.NotNil(t, tables.Processes[0].Proceso)
	assert.Equal(t, "Torno", *tables.Processes[0].Proceso)
	assert.Nil(t, tables.Processes[0].Empleado2)

	assert.True(t, tables.Caps.Descripcion)
	assert.True(t, tables.Caps.OrdenCompra)
	assert.True(t, tables.Caps.HorasOT)
	assert.Equal(t, "proceso", tables.Caps.ProcesoColumn)
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	cases := []struct {
		name      string
		orders    string
		processes string
		wantTable string
		wantCol   string
	}{
		{
			name:      "orders without estatus",
			orders:    "ot,cliente\n100,ACME\n",
			processes: processesCSV,
			wantTable: OrdersTable,
			wantCol:   "estatus",
		},
		{
			name:      "orders without ot",
			orders:    "cliente,estatus\nACME,EN PROCESO\n",
			processes: processesCSV,
			wantTable: OrdersTable,
			wantCol:   "ot",
		},
		{
			name:      "processes without ot",
			orders:    ordersCSV,
			processes: "proceso,empleado_1\nTorno,JUAN\n",
			wantTable: ProcessesTable,
			wantCol:   "ot",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(frame(t, tc.orders), frame(t, tc.processes))
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tc.wantTable, schemaErr.Table)
			assert.Equal(t, tc.wantCol, schemaErr.Column)
		})
	}
}

func TestLoadDegradedCapabilities(t *testing.T) {
	orders := "ot,estatus\n100,EN PROCESO\n"
	processes := "ot,empleado_1\n100,JUAN\n"

	tables, err := Load(frame(t, orders), frame(t, processes))
	require.NoError(t, err)

	assert.False(t, tables.Caps.Descripcion)
	assert.False(t, tables.Caps.OrdenCompra)
	assert.False(t, tables.Caps.HorasOT)
	assert.Empty(t, tables.Caps.ProcesoColumn)

	require.Len(t, tables.Orders, 1)
	assert.Nil(t, tables.Orders[0].OrdenCompra)
	assert.Nil(t, tables.Orders[0].HorasEstimadas)
	require.Len(t, tables.Processes, 1)
	assert.Nil(t, tables.Processes[0].Proceso)
}

func TestLoadProcesoAliases(t *testing.T) {
	processes := "ot,Proceso_Nombre\n100,Torno\n"

	tables, err := Load(frame(t, ordersCSV), frame(t, processes))
	require.NoError(t, err)

	assert.Equal(t, "Proceso_Nombre", tables.Caps.ProcesoColumn)
	require.NotNil(t, tables.Processes[0].Proceso)
	assert.Equal(t, "Torno", *tables.Processes[0].Proceso)
}

func TestLoadCommaDecimalHours(t *testing.T) {
	orders := `ot,estatus,horas_estimadas_ot,horas_reales_ot
100,EN PROCESO,"10,5","12,25"
`

	tables, err := Load(frame(t, orders), frame(t, processesCSV))
	require.NoError(t, err)

	require.Len(t, tables.Orders, 1)
	require.NotNil(t, tables.Orders[0].HorasEstimadas)
	assert.Equal(t, 10.5, *tables.Orders[0].HorasEstimadas)
	require.NotNil(t, tables.Orders[0].HorasReales)
	assert.Equal(t, 12.25, *tables.Orders[0].HorasReales)
}

func TestSchemaErrorMessage(t *testing.T) {
	err := &SchemaError{Table: OrdersTable, Column: "estatus"}
	assert.Equal(t, `table ot_master: required column "estatus" is missing`, err.Error())
}
