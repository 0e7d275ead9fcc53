package metrics

import "github.com/AngelCh415/CAMPAIGN_GO/internal/models"

// Familia de fórmulas del dashboard. Totales por construcción: denominadores
// defensivos, nunca error ni Inf/NaN — la tabla siempre se renderiza completa
// aunque el dato sea escaso o cero.

// DeriveRow completa los campos derivados a nivel fila. DirectRevenue se
// calcula aquí, ANTES de agrupar: una fila es un día/canal y el reparto
// revenue/unidades varía entre filas, así que sumarlo por fila es más fiel
// que recalcularlo sobre los totales del grupo.
func DeriveRow(r *models.RawRow) {
	if !r.HasAddSpend {
		if r.HasROI && r.ROI != 0 {
			r.AddSpend = r.TotalRevenue / r.ROI
		} else {
			r.AddSpend = 0
		}
	}
	total := r.DirectUnitsSold + r.IndirectUnitsSold
	if total > 0 {
		r.DirectRevenue = r.TotalRevenue * float64(r.DirectUnitsSold) / float64(total)
	} else {
		r.DirectRevenue = 0
	}
}

// DeriveAgg recalcula las métricas de ratio sobre las cantidades ya sumadas.
// DirectRevenue NO se recalcula: llega sumado fila a fila.
func DeriveAgg(a *models.AggRow) {
	a.TotalUnitsSold = a.DirectUnitsSold + a.IndirectUnitsSold
	if a.Views > 0 {
		a.CTR = float64(a.Clicks) / float64(a.Views) * 100
	} else {
		a.CTR = 0
	}
	// clicks 0 → denominador 1: deja el conteo crudo de unidades.
	// Peculiaridad heredada del reporte original, documentada y conservada.
	a.ConversionRatePerSKU = float64(a.TotalUnitsSold) / float64(max1(a.Clicks))
	a.ConversionRateDirectAdjusted = float64(a.DirectUnitsSold) / float64(max1(a.Clicks-a.IndirectUnitsSold)) * 100
	if a.AddSpend > 0 {
		a.ROIDirect = a.DirectRevenue / a.AddSpend
	} else {
		a.ROIDirect = 0
	}
}

func max1(i int) int {
	if i <= 0 {
		return 1
	}
	return i
}
