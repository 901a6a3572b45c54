package metrics

import (
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fliprelay"

const (
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

var (
	// Registry holds the relay's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	flipRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "relay",
			Name:      "flip_requests_total",
			Help:      "Total number of FlipRequested events handed to the fulfillment handler.",
		},
	)

	fulfillments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "relay",
			Name:      "fulfillments_total",
			Help:      "Total number of fulfillment attempts by outcome.",
		},
		[]string{"status"},
	)

	fulfillmentDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "relay",
			Name:      "fulfillment_duration_seconds",
			Help:      "Time from receiving a flip request to its confirmation or failure.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10), // 0.5s to ~4m
		},
		[]string{"status"},
	)

	fulfillmentsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "relay",
			Name:      "fulfillments_in_flight",
			Help:      "Number of fulfillment handlers currently running.",
		},
	)

	accountBalance = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "account",
			Name:      "balance_wei",
			Help:      "Last observed balance of the signing account in wei.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)
)

func init() {
	Registry.MustRegister(
		flipRequests,
		fulfillments,
		fulfillmentDuration,
		fulfillmentsInFlight,
		accountBalance,
		httpRequests,
		httpDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

func FlipRequestReceived() {
	flipRequests.Inc()
	fulfillmentsInFlight.Inc()
}

// ObserveFulfillment records the outcome of one handler run.
func ObserveFulfillment(status string, elapsed time.Duration) {
	fulfillmentsInFlight.Dec()
	fulfillments.WithLabelValues(status).Inc()
	fulfillmentDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

func SetAccountBalance(wei *big.Int) {
	if wei == nil {
		return
	}
	value, _ := new(big.Float).SetInt(wei).Float64()
	accountBalance.Set(value)
}

// Handler exposes the registered collectors.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps next with HTTP metrics collection. Requests are
// labelled by the mux pattern that served them.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
