package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchTableServesCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	rows, hasAddSpend, err := FetchTable(context.Background(), NewHTTPClient(2*time.Second), srv.URL+"/export.csv")
	if err != nil {
		t.Fatalf("FetchTable: %v", err)
	}
	if !hasAddSpend || len(rows) != 3 {
		t.Fatalf("rows = %d hasAddSpend = %v", len(rows), hasAddSpend)
	}
}

func TestFetchTableRetriesTransientFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	rows, _, err := FetchTable(context.Background(), NewHTTPClient(2*time.Second), srv.URL+"/export.csv")
	if err != nil {
		t.Fatalf("retry should have recovered: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if atomic.LoadInt32(&calls) < 2 {
		t.Fatal("expected at least one retry")
	}
}

func TestFetchTablePersistentFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _, err := FetchTable(context.Background(), NewHTTPClient(time.Second), srv.URL+"/export.csv")
	if err == nil {
		t.Fatal("persistent 500 must surface as error")
	}
}

func TestFetchTableEmptyURL(t *testing.T) {
	_, _, err := FetchTable(context.Background(), NewHTTPClient(time.Second), "")
	if err == nil {
		t.Fatal("empty url must fail")
	}
}
