package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AngelCh415/CAMPAIGN_GO/internal/config"
	"github.com/AngelCh415/CAMPAIGN_GO/internal/ingest"
	"github.com/AngelCh415/CAMPAIGN_GO/internal/metrics"
	"github.com/AngelCh415/CAMPAIGN_GO/internal/models"
	"github.com/AngelCh415/CAMPAIGN_GO/internal/observability"
	"github.com/AngelCh415/CAMPAIGN_GO/internal/store"
	"github.com/AngelCh415/CAMPAIGN_GO/internal/utils"
)

func NewRouter(log *slog.Logger, st *store.MemoryStore, svc *metrics.Service, cl ingest.HTTPClient, cfg config.Config) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/upload", func(w http.ResponseWriter, r *http.Request) {
		var (
			rows        []models.RawRow
			hasAddSpend bool
			name        string
			err         error
		)
		if u := r.URL.Query().Get("url"); u != "" {
			rows, hasAddSpend, err = ingest.FetchTable(r.Context(), cl, u)
			name = u
		} else {
			r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes)
			f, hdr, ferr := r.FormFile("file")
			if ferr != nil {
				writeError(w, 400, "multipart field 'file' required (or ?url=)")
				return
			}
			defer f.Close()
			name = hdr.Filename
			rows, hasAddSpend, err = ingest.ReadTable(hdr.Filename, f)
		}
		if err != nil {
			// fallo de ingesta: un solo error visible, sin salida parcial
			observability.UploadFailures.Inc()
			log.Warn("upload rejected", slog.String("name", name), slog.String("err", err.Error()))
			writeError(w, 422, err.Error())
			return
		}
		ds := st.Put(name, rows, !hasAddSpend)
		observability.Uploads.Inc()
		if !hasAddSpend {
			log.Info("ADDSPEND column missing, derived from Total Revenue / ROI", slog.String("dataset", ds.ID))
		}
		writeJSON(w, 201, map[string]any{
			"id":               ds.ID,
			"name":             ds.Name,
			"rows":             len(ds.Rows),
			"skus":             len(ds.SkuIDs),
			"dates":            ds.Dates,
			"addspend_derived": ds.AddSpendDerived,
		})
	})

	mux.Get("/report", func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.BuildReport(r.URL.Query())
		if err != nil {
			if errors.Is(err, metrics.ErrNoDataset) {
				writeError(w, 404, err.Error())
				return
			}
			writeError(w, 500, err.Error())
			return
		}
		observability.ReportRequests.Inc()
		if n := len(rep.Warnings); n > 0 {
			observability.FilterParseFailures.Add(float64(n))
		}
		writeJSON(w, 200, rep)
	})

	mux.Get("/datasets", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, st.List())
	})

	return mux
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
