package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LocalFallbackTotal counts operations that degraded to the local store,
	// labeled by operation name.
	LocalFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grocymart_local_fallback_total",
		Help: "Operations served by the local store after a remote failure.",
	}, []string{"operation"})

	// RemoteOffline is 1 while the last liveness probe failed.
	RemoteOffline = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "grocymart_remote_offline",
		Help: "Whether the remote persistence service looked unreachable on the last probe.",
	})

	// OrdersCommitted counts committed orders, labeled by the path that
	// persisted them.
	OrdersCommitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grocymart_orders_committed_total",
		Help: "Orders committed, by persistence path.",
	}, []string{"path"})
)
