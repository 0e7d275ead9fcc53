package models

import "time"

// RawRow es una fila del export de campaña tal como se ingesta.
// DirectRevenue y el fallback de AddSpend se derivan a nivel fila,
// antes de agrupar.
type RawRow struct {
	SkuID             string
	Date              string
	Views             int
	Clicks            int
	DirectUnitsSold   int
	IndirectUnitsSold int
	TotalRevenue      float64
	AddSpend          float64
	HasAddSpend       bool
	ROI               float64
	HasROI            bool
	DirectRevenue     float64
}

// AggRow es el agregado por SKU, con sus métricas derivadas.
// CTR y ConversionRateDirectAdjusted están escalados a porcentaje.
type AggRow struct {
	SkuID                        string  `json:"sku_id"`
	AddSpend                     float64 `json:"addspend"`
	CTR                          float64 `json:"ctr"`
	ConversionRatePerSKU         float64 `json:"conversion_rate_per_sku"`
	DirectUnitsSold              int     `json:"direct_units_sold"`
	Views                        int     `json:"views"`
	Clicks                       int     `json:"clicks"`
	IndirectUnitsSold            int     `json:"indirect_units_sold"`
	TotalRevenue                 float64 `json:"total_revenue"`
	DirectRevenue                float64 `json:"direct_revenue"`
	ROIDirect                    float64 `json:"roi_direct"`
	ConversionRateDirectAdjusted float64 `json:"conversion_rate_direct_adjusted"`
	TotalUnitsSold               int     `json:"total_units_sold"`
}

// KPISummary se calcula sobre los totales ya filtrados, no por fila.
type KPISummary struct {
	TotalViews                  int     `json:"total_views"`
	TotalClicks                 int     `json:"total_clicks"`
	CTROverall                  float64 `json:"ctr_overall"`
	ConversionRateOverall       float64 `json:"conversion_rate_overall"`
	ConversionRateDirectOverall float64 `json:"conversion_rate_direct_overall"`
}

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

type ChartConfig struct {
	ChartType string        `json:"chart_type"`
	Title     string        `json:"title"`
	XAxis     string        `json:"x_axis,omitempty"`
	YAxis     string        `json:"y_axis,omitempty"`
	Series    []ChartSeries `json:"series"`
}

// Report es la respuesta completa de /report: KPIs, tabla con orden de
// columnas fijo, dos gráficas top-10 y los warnings de filtros inválidos.
type Report struct {
	DatasetID            string       `json:"dataset_id"`
	DatasetName          string       `json:"dataset_name"`
	KPIs                 KPISummary   `json:"kpis"`
	Columns              []string     `json:"columns"`
	Rows                 []AggRow     `json:"rows"`
	TopROIDirect         *ChartConfig `json:"top_roi_direct,omitempty"`
	SpendVsDirectRevenue *ChartConfig `json:"spend_vs_direct_revenue,omitempty"`
	Warnings             []string     `json:"warnings,omitempty"`
}

type DatasetInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Rows       int       `json:"rows"`
	UploadedAt time.Time `json:"uploaded_at"`
}
