package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	Uploads = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campaign_uploads_total",
		Help: "Datasets ingestados con éxito",
	})
	UploadFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campaign_upload_failures_total",
		Help: "Uploads rechazados (archivo ilegible o columnas faltantes)",
	})
	ReportRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campaign_report_requests_total",
		Help: "Reportes servidos",
	})
	FilterParseFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campaign_filter_parse_failures_total",
		Help: "Expresiones de filtro malformadas ignoradas",
	})
)

func MustRegister() {
	prometheus.MustRegister(Uploads, UploadFailures, ReportRequests, FilterParseFailures)
}
