package store

import (
	"testing"

	"github.com/AngelCh415/CAMPAIGN_GO/internal/models"
)

func TestPutAndGetLatest(t *testing.T) {
	st := NewMemoryStore()
	if _, ok := st.Get(""); ok {
		t.Fatal("empty store must report no dataset")
	}

	first := st.Put("one.csv", []models.RawRow{{SkuID: "A", Date: "2024-01-02"}, {SkuID: "B", Date: "2024-01-01"}, {SkuID: "A"}}, false)
	second := st.Put("two.csv", []models.RawRow{{SkuID: "C"}}, true)

	got, ok := st.Get("")
	if !ok || got.ID != second.ID {
		t.Fatalf("latest should be the second upload, got %+v", got)
	}
	got, ok = st.Get(first.ID)
	if !ok || got.Name != "one.csv" {
		t.Fatalf("lookup by id failed: %+v", got)
	}
	if _, ok := st.Get("missing"); ok {
		t.Fatal("unknown id must miss")
	}
}

func TestPutComputesDistinctSortedOptions(t *testing.T) {
	st := NewMemoryStore()
	ds := st.Put("x.csv", []models.RawRow{
		{SkuID: "B", Date: "2024-01-02"},
		{SkuID: "A", Date: "2024-01-01"},
		{SkuID: "B", Date: "2024-01-01"},
		{SkuID: "C"},
	}, false)

	if len(ds.SkuIDs) != 3 || ds.SkuIDs[0] != "A" || ds.SkuIDs[2] != "C" {
		t.Fatalf("SkuIDs = %v", ds.SkuIDs)
	}
	if len(ds.Dates) != 2 || ds.Dates[0] != "2024-01-01" {
		t.Fatalf("Dates = %v", ds.Dates)
	}
	if !ds.HasDate {
		t.Fatal("HasDate should be true")
	}

	noDates := st.Put("y.csv", []models.RawRow{{SkuID: "A"}}, true)
	if noDates.HasDate || len(noDates.Dates) != 0 {
		t.Fatalf("dateless dataset: %+v", noDates)
	}
	if !noDates.AddSpendDerived {
		t.Fatal("AddSpendDerived flag lost")
	}
}

func TestListNewestFirst(t *testing.T) {
	st := NewMemoryStore()
	st.Put("one.csv", nil, false)
	st.Put("two.csv", nil, false)
	list := st.List()
	if len(list) != 2 || list[0].Name != "two.csv" || list[1].Name != "one.csv" {
		t.Fatalf("list order wrong: %+v", list)
	}
}
