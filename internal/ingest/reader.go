package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/AngelCh415/CAMPAIGN_GO/internal/metrics"
	"github.com/AngelCh415/CAMPAIGN_GO/internal/models"
)

// Nombres canónicos de columnas del export de campaña.
const (
	colSkuID    = "sku id"
	colViews    = "views"
	colClicks   = "clicks"
	colDirect   = "direct units sold"
	colIndirect = "indirect units sold"
	colRevenue  = "total revenue (rs.)"
	colAddSpend = "addspend"
	colROI      = "roi"
	colDate     = "date"
)

var requiredColumns = []struct{ key, label string }{
	{colSkuID, "Sku Id"},
	{colViews, "Views"},
	{colClicks, "Clicks"},
	{colDirect, "Direct Units Sold"},
	{colIndirect, "Indirect Units Sold"},
	{colRevenue, "Total Revenue (Rs.)"},
}

// ReadTable decodifica un export CSV o XLSX en filas crudas ya derivadas a
// nivel fila. El segundo retorno indica si el archivo traía columna
// ADDSPEND; si no, el gasto se derivó de Revenue/ROI y el caller debe
// avisarlo. Columna requerida ausente = error duro, sin salida parcial.
func ReadTable(name string, r io.Reader) ([]models.RawRow, bool, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv", "":
		return readCSV(r)
	case ".xlsx", ".xlsm":
		return readXLSX(r)
	default:
		return nil, false, fmt.Errorf("unsupported file type %q (use .csv or .xlsx)", ext)
	}
}

func readCSV(r io.Reader) ([]models.RawRow, bool, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, false, fmt.Errorf("read header: %w", err)
	}
	var records [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("read row: %w", err)
		}
		records = append(records, rec)
	}
	return buildRows(header, records)
}

func readXLSX(r io.Reader) ([]models.RawRow, bool, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, false, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, false, fmt.Errorf("xlsx has no sheets")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, false, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, false, fmt.Errorf("sheet %q is empty", sheets[0])
	}
	return buildRows(all[0], all[1:])
}

func buildRows(header []string, records [][]string) ([]models.RawRow, bool, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[normHeader(h)] = i
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c.key]; !ok {
			return nil, false, fmt.Errorf("missing required column %q", c.label)
		}
	}
	_, hasAddSpend := idx[colAddSpend]
	_, hasROI := idx[colROI]

	rows := make([]models.RawRow, 0, len(records))
	for _, rec := range records {
		sku := cell(rec, idx, colSkuID)
		if sku == "" {
			continue // filas sin SKU no agrupan
		}
		row := models.RawRow{
			SkuID:             sku,
			Date:              cell(rec, idx, colDate),
			Views:             atoi(cell(rec, idx, colViews)),
			Clicks:            atoi(cell(rec, idx, colClicks)),
			DirectUnitsSold:   atoi(cell(rec, idx, colDirect)),
			IndirectUnitsSold: atoi(cell(rec, idx, colIndirect)),
			TotalRevenue:      atof(cell(rec, idx, colRevenue)),
			HasAddSpend:       hasAddSpend,
		}
		if hasAddSpend {
			row.AddSpend = atof(cell(rec, idx, colAddSpend))
		}
		if roi := cell(rec, idx, colROI); hasROI && roi != "" {
			if v, err := strconv.ParseFloat(roi, 64); err == nil {
				row.ROI = v
				row.HasROI = true
			}
		}
		metrics.DeriveRow(&row)
		rows = append(rows, row)
	}
	return rows, hasAddSpend, nil
}

// normHeader tolera mayúsculas y espacios irregulares en el header.
func normHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), " ")
}

func cell(rec []string, idx map[string]int, key string) string {
	i, ok := idx[key]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// Numéricos ilegibles o en blanco cuentan como 0; negativos se recortan a 0.
func atoi(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			v = int(f)
		} else {
			return 0
		}
	}
	return max0(v)
}

func atof(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return maxf(v)
}

func max0(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

func maxf(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
