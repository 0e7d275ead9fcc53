package metrics

import "github.com/AngelCh415/CAMPAIGN_GO/internal/models"

// Filters reúne los predicados activos de una petición. Condición nil =
// columna sin filtrar. Todo se combina con AND; sin filtros activos la
// tubería es la identidad.
type Filters struct {
	Clicks     *Condition
	CTR        *Condition
	ConvDirect *Condition // compara contra el valor escalado a porcentaje
	AddSpend   *Condition
	Revenue    *Condition
	SKUs       map[string]struct{}
	Date       string
}

// ApplyFilters devuelve el subconjunto de agregados que cumple todas las
// condiciones, preservando el orden de entrada. El filtro de fecha se
// resuelve contra las filas crudas: primero qué SKUs aparecen en esa fecha,
// luego la intersección con el agregado.
func ApplyFilters(aggs []models.AggRow, raw []models.RawRow, f Filters) []models.AggRow {
	var dateSKUs map[string]struct{}
	if f.Date != "" && f.Date != "All" {
		dateSKUs = make(map[string]struct{})
		for _, r := range raw {
			if r.Date == f.Date {
				dateSKUs[r.SkuID] = struct{}{}
			}
		}
	}

	out := make([]models.AggRow, 0, len(aggs))
	for _, a := range aggs {
		if f.Clicks != nil && !f.Clicks.Match(float64(a.Clicks)) {
			continue
		}
		if f.CTR != nil && !f.CTR.Match(a.CTR) {
			continue
		}
		if f.ConvDirect != nil && !f.ConvDirect.Match(a.ConversionRateDirectAdjusted) {
			continue
		}
		if f.AddSpend != nil && !f.AddSpend.Match(a.AddSpend) {
			continue
		}
		if f.Revenue != nil && !f.Revenue.Match(a.TotalRevenue) {
			continue
		}
		if len(f.SKUs) > 0 {
			if _, ok := f.SKUs[a.SkuID]; !ok {
				continue
			}
		}
		if dateSKUs != nil {
			if _, ok := dateSKUs[a.SkuID]; !ok {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
