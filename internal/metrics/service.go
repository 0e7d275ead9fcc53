package metrics

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/AngelCh415/CAMPAIGN_GO/internal/models"
	"github.com/AngelCh415/CAMPAIGN_GO/internal/report"
	"github.com/AngelCh415/CAMPAIGN_GO/internal/store"
)

var ErrNoDataset = errors.New("no dataset uploaded")

type Service struct{ st *store.MemoryStore }

func NewService(st *store.MemoryStore) *Service { return &Service{st: st} }

// Parámetros de condición soportados, uno por columna numérica filtrable.
var conditionParams = []struct {
	param  string
	column string
	set    func(*Filters, *Condition)
}{
	{"clicks", "Clicks", func(f *Filters, c *Condition) { f.Clicks = c }},
	{"ctr", "CTR", func(f *Filters, c *Condition) { f.CTR = c }},
	{"conv_direct", "Conversion Rate Direct Adjusted", func(f *Filters, c *Condition) { f.ConvDirect = c }},
	{"addspend", "ADDSPEND", func(f *Filters, c *Condition) { f.AddSpend = c }},
	{"revenue", "Total Revenue (Rs.)", func(f *Filters, c *Condition) { f.Revenue = c }},
}

// BuildReport recomputa todo el ciclo agregado+filtro+render desde las filas
// crudas del dataset. Un filtro malformado solo genera un warning y se
// ignora; el único error duro es que no haya dataset.
func (s *Service) BuildReport(v url.Values) (models.Report, error) {
	ds, ok := s.st.Get(v.Get("dataset"))
	if !ok {
		return models.Report{}, ErrNoDataset
	}

	aggs := Aggregate(ds.Rows)

	var f Filters
	var warnings []string
	for _, p := range conditionParams {
		raw := strings.TrimSpace(v.Get(p.param))
		if raw == "" {
			continue
		}
		c, ok := ParseCondition(raw)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid filter for %s: use like '> 100' or '<= 2.5'", p.column))
			continue
		}
		p.set(&f, &c)
	}
	f.SKUs = skuSet(v["sku"])
	if d := v.Get("date"); d != "" && d != "All" {
		f.Date = d
	}

	rows := ApplyFilters(aggs, ds.Rows, f)

	return models.Report{
		DatasetID:            ds.ID,
		DatasetName:          ds.Name,
		KPIs:                 report.Summarize(rows),
		Columns:              report.TableColumns,
		Rows:                 rows,
		TopROIDirect:         report.TopROIDirect(rows),
		SpendVsDirectRevenue: report.SpendVsDirectRevenue(rows),
		Warnings:             warnings,
	}, nil
}

// skuSet admite el parámetro repetido y listas separadas por coma.
func skuSet(vals []string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, v := range vals {
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				out[p] = struct{}{}
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
