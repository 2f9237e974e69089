// Package classify derives the per-order delivery state and the rework flag.
package classify

import (
	"strings"
	"time"

	"github.com/adimatec/production_dashboard/internal/production/loader"
	"github.com/adimatec/production_dashboard/internal/production/types"
)

// DueSoonWindow is how far ahead an open order's delivery date may sit before
// it stops counting as "por vencer".
const DueSoonWindow = 7 * 24 * time.Hour

// EstadosNoVencidos are the terminal statuses. An order in one of these never
// counts as overdue regardless of its delivery date.
var EstadosNoVencidos = []string{"FACTURADO", "OK", "OK NO ENTREGADO"}

const reprocesoMarker = "GARANTIA"

func IsEstadoTerminal(estatus string) bool {
	for _, s := range EstadosNoVencidos {
		if estatus == s {
			return true
		}
	}
	return false
}

// DeliveryState classifies one order. Terminal status wins over every
// date-based rule; an absent delivery date means the order is on track.
func DeliveryState(estatus string, fechaEntrega *time.Time, now time.Time) types.EstadoEntrega {
	if IsEstadoTerminal(estatus) {
		return types.EntregaCompletada
	}
	if fechaEntrega == nil {
		return types.EntregaEnPlazo
	}
	if fechaEntrega.Before(now) {
		return types.EntregaVencida
	}
	if !fechaEntrega.After(now.Add(DueSoonWindow)) {
		return types.EntregaPorVencer
	}
	return types.EntregaEnPlazo
}

// IsReproceso flags warranty-driven rework: a purchase order containing the
// marker substring, case-insensitively. Absent value means no rework.
func IsReproceso(ordenCompra *string) bool {
	if ordenCompra == nil {
		return false
	}
	return strings.Contains(strings.ToUpper(*ordenCompra), reprocesoMarker)
}

// Derive computes the derived columns for every order. When the feed carries
// no orden_compra column at all the rework flag stays false everywhere.
func Derive(orders []types.OrderRecord, caps loader.Capabilities, now time.Time) []types.DerivedOrderRecord {
	derived := make([]types.DerivedOrderRecord, 0, len(orders))
	for _, o := range orders {
		rec := types.DerivedOrderRecord{
			OrderRecord:   o,
			EstadoEntrega: DeliveryState(o.Estatus, o.FechaEntrega, now),
		}
		if caps.OrdenCompra {
			rec.EsReproceso = IsReproceso(o.OrdenCompra)
		}
		derived = append(derived, rec)
	}
	return derived
}
