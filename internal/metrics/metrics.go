package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics собирает счётчики HTTP-запросов, загрузок ленты и пропущенных строк CSV.
type Metrics struct {
	Registry        *prometheus.Registry
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	NewsFetches     *prometheus.CounterVec
	RowsSkipped     prometheus.Counter
}

// New регистрирует метрики в отдельном реестре, чтобы тесты не делили глобальное состояние.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		NewsFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "news_fetches_total",
			Help:      "Upstream RSS fetches by result.",
		}, []string{"result"}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "historical_rows_skipped_total",
			Help:      "Historical rows dropped because Seats was not an integer.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.RequestDuration,
		m.NewsFetches,
		m.RowsSkipped,
	)
	return m
}
