package metrics

import (
	"sort"

	"github.com/AngelCh415/CAMPAIGN_GO/internal/models"
)

// Aggregate agrupa por SkuID y suma los campos aditivos, incluido el
// DirectRevenue ya derivado por fila. Después recalcula los ratios del
// grupo. El resultado se ordena por SkuID para respuestas deterministas.
func Aggregate(rows []models.RawRow) []models.AggRow {
	byID := make(map[string]*models.AggRow)
	for _, r := range rows {
		a, ok := byID[r.SkuID]
		if !ok {
			a = &models.AggRow{SkuID: r.SkuID}
			byID[r.SkuID] = a
		}
		a.Views += r.Views
		a.Clicks += r.Clicks
		a.DirectUnitsSold += r.DirectUnitsSold
		a.IndirectUnitsSold += r.IndirectUnitsSold
		a.TotalRevenue += r.TotalRevenue
		a.AddSpend += r.AddSpend
		a.DirectRevenue += r.DirectRevenue
	}

	out := make([]models.AggRow, 0, len(byID))
	for _, a := range byID {
		DeriveAgg(a)
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SkuID < out[j].SkuID })
	return out
}
