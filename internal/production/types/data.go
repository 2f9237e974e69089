package types

import "time"

// FilterAll is the sentinel selection value that disables a predicate,
// matching the "Todos" option shown in the dashboard sidebar.
const FilterAll = "Todos"

type EstadoEntrega string

const (
	EntregaCompletada EstadoEntrega = "Completada"
	EntregaVencida    EstadoEntrega = "Vencida"
	EntregaPorVencer  EstadoEntrega = "Por vencer"
	EntregaEnPlazo    EstadoEntrega = "En plazo"
)

// OrderRecord is one row of the OT master table. The OT number is kept as a
// string so that numeric-looking identifiers keep their leading zeros.
// Optional columns come through as nil when absent or unparseable.
type OrderRecord struct {
	OT             string     `json:"ot"`
	Descripcion    string     `json:"descripcion,omitempty"`
	Cliente        string     `json:"cliente"`
	Estatus        string     `json:"estatus"`
	OrdenCompra    *string    `json:"orden_compra,omitempty"`
	FechaEntrega   *time.Time `json:"fecha_entrega,omitempty"`
	FechaImpresion *time.Time `json:"fecha_impresion,omitempty"`
	FechaTerminado *time.Time `json:"fecha_terminado,omitempty"`
	FechaEntregada *time.Time `json:"fecha_entregada,omitempty"`
	HorasEstimadas *float64   `json:"horas_estimadas_ot,omitempty"`
	HorasReales    *float64   `json:"horas_reales_ot,omitempty"`
}

// ProcessRecord is one row of the processes table. Many processes can share
// the same OT. Proceso is resolved once at load time from the known column
// aliases; employee names are kept raw here and normalized where matching or
// display needs them.
type ProcessRecord struct {
	OT             string     `json:"ot"`
	Proceso        *string    `json:"proceso,omitempty"`
	Empleado1      *string    `json:"empleado_1,omitempty"`
	Empleado2      *string    `json:"empleado_2,omitempty"`
	FechaInicio1   *time.Time `json:"fecha_inicio_1,omitempty"`
	FechaInicio2   *time.Time `json:"fecha_inicio_2,omitempty"`
	HorasEstimadas *float64   `json:"horas_estimadas,omitempty"`
	HorasReales    *float64   `json:"horas_reales,omitempty"`
}

// FilterSelection holds the sidebar filters. String fields use FilterAll to
// disable a predicate; the delivery-date range is only active when both
// bounds are set.
type FilterSelection struct {
	Cliente    string
	Estatus    string
	OT         string
	Empleado   string
	FechaDesde *time.Time
	FechaHasta *time.Time
}

// NewFilterSelection returns a selection with every predicate disabled.
func NewFilterSelection() FilterSelection {
	return FilterSelection{
		Cliente:  FilterAll,
		Estatus:  FilterAll,
		OT:       FilterAll,
		Empleado: FilterAll,
	}
}

// FilterOptions are the distinct values offered in the sidebar selectors,
// built from the unfiltered tables. Employee names are normalized and
// deduplicated.
type FilterOptions struct {
	Clientes  []string `json:"clientes"`
	Estatus   []string `json:"estatus"`
	OTs       []string `json:"ots"`
	Empleados []string `json:"empleados"`
}

// DerivedOrderRecord augments an order with the per-run derived columns.
// Never persisted; recomputed on every pipeline run.
type DerivedOrderRecord struct {
	OrderRecord
	EstadoEntrega EstadoEntrega `json:"estado_entrega"`
	EsReproceso   bool          `json:"es_reproceso"`
}

// DeviationRecord is an order with valid hours on both sides and the derived
// difference. DiferenciaHoras = horas_reales_ot - horas_estimadas_ot; a
// non-positive difference counts as a "positive" (favorable) deviation.
type DeviationRecord struct {
	DerivedOrderRecord
	DiferenciaHoras float64 `json:"diferencia_horas"`
}

type ParetoEntry struct {
	OT                  string  `json:"ot"`
	DiferenciaHoras     float64 `json:"diferencia_horas"`
	PorcentajeAcumulado float64 `json:"porcentaje_acumulado"`
}

// ParetoAnalysis summarizes the 80/20 reading of the negative-deviation set.
type ParetoAnalysis struct {
	OTsCriticas        int     `json:"ots_criticas"`
	PorcentajeOTs      float64 `json:"porcentaje_ots"`
	HorasRepresentadas float64 `json:"horas_representadas"`
}

// Summary carries every scalar metric the dashboard header shows. All
// percentage fields are 0 when their denominator is 0.
type Summary struct {
	TotalOTs                int     `json:"total_ots"`
	OTsFacturadas           int     `json:"ots_facturadas"`
	OTsEnProceso            int     `json:"ots_en_proceso"`
	OTsVencidas             int     `json:"ots_vencidas"`
	OTsPorVencer            int     `json:"ots_por_vencer"`
	PorcentajeFacturado     float64 `json:"porcentaje_facturado"`
	TotalReprocesos         int     `json:"total_reprocesos"`
	PorcentajeReprocesos    float64 `json:"porcentaje_reprocesos"`
	TotalHorasProgramadas   float64 `json:"total_horas_programadas"`
	HorasDesviacionPositiva float64 `json:"horas_desviacion_positiva"`
	HorasDesviacionNegativa float64 `json:"horas_desviacion_negativa"`
	PorcentajePositivo      float64 `json:"porcentaje_positivo"`
	PorcentajeNegativo      float64 `json:"porcentaje_negativo"`
}

type SummaryEntry struct {
	Metrica string `json:"metrica"`
	Valor   string `json:"valor"`
}

type ChartRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ChartData holds the label/count rows behind the dashboard charts.
type ChartData struct {
	EstadoEntrega []ChartRow `json:"estado_entrega"`
	PorCliente    []ChartRow `json:"por_cliente"`
	PorEstatus    []ChartRow `json:"por_estatus"`
}

// ReportBundle is everything one pipeline run produces, in the shape the
// presentation and export layers consume.
type ReportBundle struct {
	Orders                []DerivedOrderRecord `json:"orders"`
	Processes             []ProcessRecord      `json:"processes"`
	Summary               Summary              `json:"summary"`
	DesviacionesPositivas []DeviationRecord    `json:"desviaciones_positivas"`
	DesviacionesNegativas []DeviationRecord    `json:"desviaciones_negativas"`
	Pareto                []ParetoEntry        `json:"pareto"`
	Analisis              ParetoAnalysis       `json:"analisis_80_20"`
	OTsCriticas           []DeviationRecord    `json:"ots_criticas"`
	Charts                ChartData            `json:"charts"`
	GeneratedAt           time.Time            `json:"generated_at"`
}
