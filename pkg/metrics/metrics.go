package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saaslanding", Name: "http_requests_total", Help: "Number of HTTP requests by route, method and status."},
		[]string{"route", "method", "status"},
	)
	StoreInserts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "saaslanding", Name: "store_inserts_total", Help: "Number of document inserts by collection."},
		[]string{"collection"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(StoreInserts)
}
