package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCollectors(reg)

	HTTPRequests.WithLabelValues("/blog", "GET", "200").Inc()
	StoreInserts.WithLabelValues("blogpost").Inc()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	if !names["saaslanding_http_requests_total"] {
		t.Fatalf("http requests counter not registered: %v", names)
	}
	if !names["saaslanding_store_inserts_total"] {
		t.Fatalf("store inserts counter not registered: %v", names)
	}
}
