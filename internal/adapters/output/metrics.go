package output

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// ReportExporter exposes one finished report's figures as Prometheus
// gauges. The report is immutable, so gauge values are set once at
// construction and served unchanged for the lifetime of the server.
type ReportExporter struct {
	registry *prometheus.Registry

	totalEntries   prometheus.Gauge
	failedAttempts prometheus.Gauge
	failedLogins   *prometheus.GaugeVec
	alerts         *prometheus.GaugeVec

	server *http.Server
}

// MetricsConfig configures the metrics HTTP endpoint.
type MetricsConfig struct {
	Addr string
	Path string
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Addr: ":9090",
		Path: "/metrics",
	}
}

// NewReportExporter builds the exporter and populates it from the report.
func NewReportExporter(namespace string, report *domain.Report) *ReportExporter {
	if namespace == "" {
		namespace = "logsec"
	}

	e := &ReportExporter{
		registry: prometheus.NewRegistry(),
		totalEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_entries",
			Help:      "Total number of log entries analyzed",
		}),
		failedAttempts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "failed_attempts",
			Help:      "Total number of failed authentication attempts",
		}),
		failedLogins: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "failed_logins",
			Help:      "Failed authentication attempts by source IP",
		}, []string{"ip"}),
		alerts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alerts",
			Help:      "Detection alerts by kind and source IP",
		}, []string{"kind", "ip"}),
	}

	e.registry.MustRegister(e.totalEntries, e.failedAttempts, e.failedLogins, e.alerts)

	e.totalEntries.Set(float64(report.TotalEntries))
	e.failedAttempts.Set(float64(report.FailedAttempts))
	for _, c := range report.FailedLoginsByIP {
		e.failedLogins.WithLabelValues(c.IP).Set(float64(c.Count))
	}
	for _, a := range report.Alerts {
		e.alerts.WithLabelValues(string(a.Kind), a.IP).Set(float64(a.Metric))
	}

	return e
}

// StartServer serves the metrics endpoint until StopServer is called.
func (e *ReportExporter) StartServer(config MetricsConfig) error {
	mux := http.NewServeMux()
	mux.Handle(config.Path, promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{}))

	e.server = &http.Server{
		Addr:              config.Addr,
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.Addr).Str("path", config.Path).Msg("Starting metrics server")
		if err := e.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Metrics server error")
		}
	}()

	return nil
}

func (e *ReportExporter) StopServer() error {
	if e.server != nil {
		return e.server.Close()
	}
	return nil
}
