package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobboard_http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"route", "status"},
	)
	JobsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_jobs_created_total",
			Help: "Total number of job postings created.",
		},
	)
	JobsDeletedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_jobs_deleted_total",
			Help: "Total number of job postings deleted.",
		},
	)
	JobsTotalGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "jobboard_jobs_total",
			Help: "Number of job postings currently visible on the board.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(JobsCreatedCounter)
	prometheus.MustRegister(JobsDeletedCounter)
	prometheus.MustRegister(JobsTotalGauge)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
