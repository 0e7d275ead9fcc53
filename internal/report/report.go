package report

import (
	"sort"

	"github.com/AngelCh415/CAMPAIGN_GO/internal/models"
)

// TableColumns fija el orden de columnas de la tabla agregada, idéntico al
// dashboard que consumen los frontends existentes.
var TableColumns = []string{
	"Sku Id", "ADDSPEND", "CTR", "Conversion Rate per SKU",
	"Direct Units Sold", "Views", "Clicks", "Indirect Units Sold",
	"Total Revenue (Rs.)", "Direct Revenue", "ROI_Direct", "Conversion Rate Direct Adjusted",
}

// Summarize calcula los KPI sobre los totales del conjunto YA filtrado.
// Aquí el denominador en cero produce 0 directamente, no la sustitución
// por 1 de las métricas por SKU.
func Summarize(rows []models.AggRow) models.KPISummary {
	var views, clicks, direct, indirect int
	for _, a := range rows {
		views += a.Views
		clicks += a.Clicks
		direct += a.DirectUnitsSold
		indirect += a.IndirectUnitsSold
	}

	var ctr, cr, crDirect float64
	if views > 0 {
		ctr = float64(clicks) / float64(views) * 100
	}
	if clicks > 0 {
		cr = float64(direct+indirect) / float64(clicks)
	}
	if d := clicks - indirect; d > 0 {
		crDirect = float64(direct) / float64(d) * 100
	}

	return models.KPISummary{
		TotalViews:                  views,
		TotalClicks:                 clicks,
		CTROverall:                  round2(ctr),
		ConversionRateOverall:       round2(cr),
		ConversionRateDirectOverall: round2(crDirect),
	}
}

const chartLimit = 10

// TopROIDirect arma la gráfica de barras top-10 por ROI directo. Las filas
// sin ventas directas no aportan señal de ROI y se excluyen.
func TopROIDirect(rows []models.AggRow) *models.ChartConfig {
	eligible := withDirectSales(rows)
	if len(eligible) == 0 {
		return nil
	}
	sort.Slice(eligible, func(i, j int) bool { return eligible[i].ROIDirect > eligible[j].ROIDirect })
	if len(eligible) > chartLimit {
		eligible = eligible[:chartLimit]
	}

	points := make([]models.ChartPoint, 0, len(eligible))
	for _, a := range eligible {
		points = append(points, models.ChartPoint{Label: a.SkuID, Value: round2(a.ROIDirect)})
	}
	return &models.ChartConfig{
		ChartType: "bar",
		Title:     "Top 10 SKUs by ROI (Direct)",
		XAxis:     "Sku Id",
		YAxis:     "ROI_Direct",
		Series:    []models.ChartSeries{{Name: "ROI_Direct", Data: points}},
	}
}

// SpendVsDirectRevenue arma la gráfica agrupada top-10 por gasto:
// ADDSPEND contra Direct Revenue, misma exclusión que la de ROI.
func SpendVsDirectRevenue(rows []models.AggRow) *models.ChartConfig {
	eligible := withDirectSales(rows)
	if len(eligible) == 0 {
		return nil
	}
	sort.Slice(eligible, func(i, j int) bool { return eligible[i].AddSpend > eligible[j].AddSpend })
	if len(eligible) > chartLimit {
		eligible = eligible[:chartLimit]
	}

	spend := make([]models.ChartPoint, 0, len(eligible))
	revenue := make([]models.ChartPoint, 0, len(eligible))
	for _, a := range eligible {
		spend = append(spend, models.ChartPoint{Label: a.SkuID, Value: round2(a.AddSpend)})
		revenue = append(revenue, models.ChartPoint{Label: a.SkuID, Value: round2(a.DirectRevenue)})
	}
	return &models.ChartConfig{
		ChartType: "grouped_bar",
		Title:     "Top 10 SKUs by ADDSPEND: Spend vs Direct Revenue",
		XAxis:     "Sku Id",
		YAxis:     "Amount (Rs.)",
		Series: []models.ChartSeries{
			{Name: "ADDSPEND", Data: spend},
			{Name: "Direct Revenue", Data: revenue},
		},
	}
}

func withDirectSales(rows []models.AggRow) []models.AggRow {
	out := make([]models.AggRow, 0, len(rows))
	for _, a := range rows {
		if a.DirectUnitsSold > 0 {
			out = append(out, a)
		}
	}
	return out
}

func round2(f float64) float64 { return float64(int64(f*100+0.5)) / 100 }
