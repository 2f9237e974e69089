// Package filter applies the sidebar selection to both tables, propagating
// OT membership between them. Predicates never mutate their input and
// commute with each other.
package filter

import (
	"sort"

	"github.com/adimatec/production_dashboard/internal/production/names"
	"github.com/adimatec/production_dashboard/internal/production/types"
	"github.com/samber/lo"
)

// Apply narrows both tables with the active predicates. Order predicates
// narrow orders first and restrict processes to the surviving OT set; the
// employee predicate filters processes first and restricts orders to the OTs
// that still have a matching process.
func Apply(orders []types.OrderRecord, processes []types.ProcessRecord, sel types.FilterSelection) ([]types.OrderRecord, []types.ProcessRecord) {
	if sel.Cliente != "" && sel.Cliente != types.FilterAll {
		orders = lo.Filter(orders, func(o types.OrderRecord, _ int) bool {
			return o.Cliente == sel.Cliente
		})
		processes = keepProcessesByOT(processes, otSet(orders))
	}

	if sel.Estatus != "" && sel.Estatus != types.FilterAll {
		orders = lo.Filter(orders, func(o types.OrderRecord, _ int) bool {
			return o.Estatus == sel.Estatus
		})
		processes = keepProcessesByOT(processes, otSet(orders))
	}

	if sel.OT != "" && sel.OT != types.FilterAll {
		orders = lo.Filter(orders, func(o types.OrderRecord, _ int) bool {
			return o.OT == sel.OT
		})
		processes = lo.Filter(processes, func(p types.ProcessRecord, _ int) bool {
			return p.OT == sel.OT
		})
	}

	if sel.Empleado != "" && sel.Empleado != types.FilterAll {
		processes = lo.Filter(processes, func(p types.ProcessRecord, _ int) bool {
			return employeeMatches(p, sel.Empleado)
		})
		allowed := lo.SliceToMap(processes, func(p types.ProcessRecord) (string, struct{}) {
			return p.OT, struct{}{}
		})
		orders = lo.Filter(orders, func(o types.OrderRecord, _ int) bool {
			_, ok := allowed[o.OT]
			return ok
		})
	}

	if sel.FechaDesde != nil && sel.FechaHasta != nil {
		orders = lo.Filter(orders, func(o types.OrderRecord, _ int) bool {
			if o.FechaEntrega == nil {
				return false
			}
			return !o.FechaEntrega.Before(*sel.FechaDesde) && !o.FechaEntrega.After(*sel.FechaHasta)
		})
		processes = keepProcessesByOT(processes, otSet(orders))
	}

	return orders, processes
}

func employeeMatches(p types.ProcessRecord, empleado string) bool {
	if n, ok := names.NormalizePtr(p.Empleado1); ok && n == empleado {
		return true
	}
	if n, ok := names.NormalizePtr(p.Empleado2); ok && n == empleado {
		return true
	}
	return false
}

func otSet(orders []types.OrderRecord) map[string]struct{} {
	return lo.SliceToMap(orders, func(o types.OrderRecord) (string, struct{}) {
		return o.OT, struct{}{}
	})
}

func keepProcessesByOT(processes []types.ProcessRecord, allowed map[string]struct{}) []types.ProcessRecord {
	return lo.Filter(processes, func(p types.ProcessRecord, _ int) bool {
		_, ok := allowed[p.OT]
		return ok
	})
}

// Options builds the sidebar selector values from the unfiltered tables.
// Employee names are normalized before deduplication so the same person
// typed three ways collapses to one option.
func Options(orders []types.OrderRecord, processes []types.ProcessRecord) types.FilterOptions {
	opts := types.FilterOptions{
		Clientes: sortedUnique(lo.FilterMap(orders, func(o types.OrderRecord, _ int) (string, bool) {
			return o.Cliente, o.Cliente != ""
		})),
		Estatus: sortedUnique(lo.FilterMap(orders, func(o types.OrderRecord, _ int) (string, bool) {
			return o.Estatus, o.Estatus != ""
		})),
		OTs: sortedUnique(lo.Map(orders, func(o types.OrderRecord, _ int) string {
			return o.OT
		})),
	}

	var empleados []string
	for _, p := range processes {
		if n, ok := names.NormalizePtr(p.Empleado1); ok {
			empleados = append(empleados, n)
		}
		if n, ok := names.NormalizePtr(p.Empleado2); ok {
			empleados = append(empleados, n)
		}
	}
	opts.Empleados = sortedUnique(empleados)

	return opts
}

func sortedUnique(values []string) []string {
	unique := lo.Uniq(values)
	sort.Strings(unique)
	return unique
}
