package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type FlightMetricsCollector struct {
	Detections     *prometheus.CounterVec
	SourceFetches  *prometheus.CounterVec
	ETARequests    *prometheus.CounterVec
	ETALatency     *prometheus.HistogramVec
	RefreshLatency prometheus.Histogram
}

var flightCollector *FlightMetricsCollector

func getFlightCollector() *FlightMetricsCollector {
	if flightCollector == nil {
		flightCollector = &FlightMetricsCollector{
			Detections: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "flight_detections_total",
					Help: "The total number of flights detected, by detection source",
				},
				[]string{"source"},
			),
			SourceFetches: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "flight_source_fetches_total",
					Help: "The total number of flight source fetch attempts",
				},
				[]string{"source", "outcome"},
			),
			ETARequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "flight_eta_requests_total",
					Help: "The total number of travel-time lookups",
				},
				[]string{"provider", "mode", "outcome"},
			),
			ETALatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "flight_eta_duration_seconds",
					Help:    "Travel-time lookup duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"provider", "mode"},
			),
			RefreshLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "flight_snapshot_refresh_duration_seconds",
					Help:    "Display snapshot refresh duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
			),
		}
	}
	return flightCollector
}

// RecordDetection counts one detected flight by its detection source
func RecordDetection(source string) {
	getFlightCollector().Detections.WithLabelValues(source).Inc()
}

// RecordSourceFetch counts one fetch attempt against a flight source
func RecordSourceFetch(source string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	getFlightCollector().SourceFetches.WithLabelValues(source, outcome).Inc()
}

// RecordETARequest counts one travel-time lookup
func RecordETARequest(provider, mode string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	getFlightCollector().ETARequests.WithLabelValues(provider, mode, outcome).Inc()
}

// ObserveETALatency records how long a travel-time lookup took
func ObserveETALatency(provider, mode string, seconds float64) {
	getFlightCollector().ETALatency.WithLabelValues(provider, mode).Observe(seconds)
}

// ObserveRefreshLatency records how long a snapshot refresh took
func ObserveRefreshLatency(seconds float64) {
	getFlightCollector().RefreshLatency.Observe(seconds)
}
