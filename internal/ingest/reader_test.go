package ingest

import (
	"math"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Sku Id,Views,Clicks,Direct Units Sold,Indirect Units Sold,Total Revenue (Rs.),ADDSPEND,Date
A,100,10,2,1,300,50,2024-01-01
A,50,5,1,0,100,20,2024-01-02
B,10,0,0,0,0,5,2024-01-01
`

func closeTo(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestReadTableCSV(t *testing.T) {
	rows, hasAddSpend, err := ReadTable("campaign.csv", strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if !hasAddSpend {
		t.Fatal("ADDSPEND column present, flag says otherwise")
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	r := rows[0]
	if r.SkuID != "A" || r.Views != 100 || r.Clicks != 10 || r.Date != "2024-01-01" {
		t.Fatalf("first row wrong: %+v", r)
	}
	// la derivación por fila ya corrió en la ingesta
	if !closeTo(r.DirectRevenue, 200) {
		t.Fatalf("DirectRevenue = %v, want 200", r.DirectRevenue)
	}
}

func TestReadTableMissingRequiredColumn(t *testing.T) {
	csv := "Sku Id,Views,Direct Units Sold,Indirect Units Sold,Total Revenue (Rs.)\nA,1,1,1,10\n"
	_, _, err := ReadTable("campaign.csv", strings.NewReader(csv))
	if err == nil {
		t.Fatal("missing Clicks column must fail the upload")
	}
	if !strings.Contains(err.Error(), "Clicks") {
		t.Fatalf("error must name the missing column: %v", err)
	}
}

func TestReadTableAddSpendFallback(t *testing.T) {
	csv := "Sku Id,Views,Clicks,Direct Units Sold,Indirect Units Sold,Total Revenue (Rs.),ROI\nA,10,1,1,0,300,2\nB,10,1,1,0,300,\n"
	rows, hasAddSpend, err := ReadTable("campaign.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if hasAddSpend {
		t.Fatal("no ADDSPEND column in source")
	}
	if !closeTo(rows[0].AddSpend, 150) {
		t.Fatalf("AddSpend = %v, want 300/2", rows[0].AddSpend)
	}
	// ROI en blanco → sin fallback, gasto 0
	if rows[1].AddSpend != 0 {
		t.Fatalf("blank ROI must default AddSpend to 0, got %v", rows[1].AddSpend)
	}
}

func TestReadTableHeaderTolerance(t *testing.T) {
	csv := "  sku id , VIEWS ,Clicks,direct  units sold,Indirect Units Sold,TOTAL REVENUE (RS.)\nA,1,2,3,4,5\n"
	rows, _, err := ReadTable("campaign.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("case/space-insensitive headers should parse: %v", err)
	}
	if len(rows) != 1 || rows[0].DirectUnitsSold != 3 {
		t.Fatalf("rows: %+v", rows)
	}
}

func TestReadTableDirtyCells(t *testing.T) {
	csv := "Sku Id,Views,Clicks,Direct Units Sold,Indirect Units Sold,Total Revenue (Rs.),ADDSPEND\nA,-5,x,2,,100,10\n,1,1,1,1,1,1\n"
	rows, _, err := ReadTable("campaign.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	// la fila sin SKU se descarta; ilegibles/negativos/vacíos cuentan 0
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 (blank sku skipped)", len(rows))
	}
	r := rows[0]
	if r.Views != 0 || r.Clicks != 0 || r.IndirectUnitsSold != 0 || r.DirectUnitsSold != 2 {
		t.Fatalf("dirty cells not zeroed: %+v", r)
	}
}

func TestReadTableUnsupportedExtension(t *testing.T) {
	_, _, err := ReadTable("campaign.pdf", strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("err = %v, want unsupported file type", err)
	}
}

func TestReadTableXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"Sku Id", "Views", "Clicks", "Direct Units Sold", "Indirect Units Sold", "Total Revenue (Rs.)", "ADDSPEND"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	row := []interface{}{"A", 100, 10, 2, 1, 300, 50}
	if err := f.SetSheetRow(sheet, "A2", &row); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	rows, hasAddSpend, err := ReadTable("campaign.xlsx", buf)
	if err != nil {
		t.Fatalf("ReadTable xlsx: %v", err)
	}
	if !hasAddSpend || len(rows) != 1 {
		t.Fatalf("rows = %d hasAddSpend = %v", len(rows), hasAddSpend)
	}
	if rows[0].SkuID != "A" || rows[0].Views != 100 || !closeTo(rows[0].DirectRevenue, 200) {
		t.Fatalf("xlsx row wrong: %+v", rows[0])
	}
}
