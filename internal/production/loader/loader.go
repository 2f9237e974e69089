// Package loader turns the raw sheet dataframes into typed tables. Column
// presence is resolved exactly once here and recorded in Capabilities; the
// downstream stages consult the capabilities instead of re-checking columns
// per row.
package loader

import (
	"fmt"

	"github.com/adimatec/production_dashboard/internal/production/types"
	"github.com/adimatec/production_dashboard/internal/production/utils"
	"github.com/go-gota/gota/dataframe"
)

const (
	OrdersTable    = "ot_master"
	ProcessesTable = "procesos"
)

const (
	colOT             = "ot"
	colDescripcion    = "descripcion"
	colCliente        = "cliente"
	colEstatus        = "estatus"
	colOrdenCompra    = "orden_compra"
	colFechaEntrega   = "fecha_entrega"
	colFechaImpresion = "fecha_impresion"
	colFechaTerminado = "fecha_terminado"
	colFechaEntregada = "fecha_entregada"
	colHorasEstOT     = "horas_estimadas_ot"
	colHorasRealesOT  = "horas_reales_ot"
	colEmpleado1      = "empleado_1"
	colEmpleado2      = "empleado_2"
	colFechaInicio1   = "fecha_inicio_1"
	colFechaInicio2   = "fecha_inicio_2"
	colHorasEst       = "horas_estimadas"
	colHorasReales    = "horas_reales"
)

// procesoAliases lists the spellings seen for the process-name column across
// feeds, in resolution order.
var procesoAliases = []string{"proceso", "Proceso", "PROCESO", "proceso_nombre", "Proceso_Nombre"}

// SchemaError marks a missing load-bearing column. Anything else degrades;
// without these no derivation is meaningful.
type SchemaError struct {
	Table  string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s: required column %q is missing", e.Table, e.Column)
}

// Capabilities records which optional columns the current feeds carry.
type Capabilities struct {
	Descripcion   bool
	OrdenCompra   bool
	HorasOT       bool // both horas_estimadas_ot and horas_reales_ot present
	ProcesoColumn string
}

// Tables is the typed view of one raw fetch.
type Tables struct {
	Orders    []types.OrderRecord
	Processes []types.ProcessRecord
	Caps      Capabilities
}

// Load validates the load-bearing columns of both feeds and converts every
// row. Optional cells that are absent or malformed come through as nil.
func Load(ordersDf, processesDf dataframe.DataFrame) (*Tables, error) {
	for _, col := range []string{colOT, colEstatus} {
		if !utils.HasColumn(&ordersDf, col) {
			return nil, &SchemaError{Table: OrdersTable, Column: col}
		}
	}
	if !utils.HasColumn(&processesDf, colOT) {
		return nil, &SchemaError{Table: ProcessesTable, Column: colOT}
	}

	caps := Capabilities{
		Descripcion: utils.HasColumn(&ordersDf, colDescripcion),
		OrdenCompra: utils.HasColumn(&ordersDf, colOrdenCompra),
		HorasOT: utils.HasColumn(&ordersDf, colHorasEstOT) &&
			utils.HasColumn(&ordersDf, colHorasRealesOT),
		ProcesoColumn: resolveProcesoColumn(&processesDf),
	}

	orders := make([]types.OrderRecord, 0, ordersDf.Nrow())
	for i := 0; i < ordersDf.Nrow(); i++ {
		rec := dfRowToOrder(ordersDf, i)
		if rec.OT == "" {
			continue
		}
		orders = append(orders, rec)
	}

	processes := make([]types.ProcessRecord, 0, processesDf.Nrow())
	for i := 0; i < processesDf.Nrow(); i++ {
		rec := dfRowToProcess(processesDf, i, caps.ProcesoColumn)
		if rec.OT == "" {
			continue
		}
		processes = append(processes, rec)
	}

	return &Tables{Orders: orders, Processes: processes, Caps: caps}, nil
}

func resolveProcesoColumn(df *dataframe.DataFrame) string {
	for _, alias := range procesoAliases {
		if utils.HasColumn(df, alias) {
			return alias
		}
	}
	return ""
}

func dfRowToOrder(df dataframe.DataFrame, rowIdx int) types.OrderRecord {
	return types.OrderRecord{
		OT:             utils.GetStr(colOT, rowIdx, &df),
		Descripcion:    utils.GetStr(colDescripcion, rowIdx, &df),
		Cliente:        utils.GetStr(colCliente, rowIdx, &df),
		Estatus:        utils.GetStr(colEstatus, rowIdx, &df),
		OrdenCompra:    utils.GetStrPtr(colOrdenCompra, rowIdx, &df),
		FechaEntrega:   utils.GetTimePtr(colFechaEntrega, rowIdx, &df),
		FechaImpresion: utils.GetTimePtr(colFechaImpresion, rowIdx, &df),
		FechaTerminado: utils.GetTimePtr(colFechaTerminado, rowIdx, &df),
		FechaEntregada: utils.GetTimePtr(colFechaEntregada, rowIdx, &df),
		HorasEstimadas: utils.GetFloatPtr(colHorasEstOT, rowIdx, &df),
		HorasReales:    utils.GetFloatPtr(colHorasRealesOT, rowIdx, &df),
	}
}

func dfRowToProcess(df dataframe.DataFrame, rowIdx int, procesoCol string) types.ProcessRecord {
	rec := types.ProcessRecord{
		OT:             utils.GetStr(colOT, rowIdx, &df),
		Empleado1:      utils.GetStrPtr(colEmpleado1, rowIdx, &df),
		Empleado2:      utils.GetStrPtr(colEmpleado2, rowIdx, &df),
		FechaInicio1:   utils.GetTimePtr(colFechaInicio1, rowIdx, &df),
		FechaInicio2:   utils.GetTimePtr(colFechaInicio2, rowIdx, &df),
		HorasEstimadas: utils.GetFloatPtr(colHorasEst, rowIdx, &df),
		HorasReales:    utils.GetFloatPtr(colHorasReales, rowIdx, &df),
	}
	if procesoCol != "" {
		rec.Proceso = utils.GetStrPtr(procesoCol, rowIdx, &df)
	}
	return rec
}
