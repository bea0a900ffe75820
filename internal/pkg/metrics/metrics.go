// internal/pkg/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 订购上下文的业务指标。
var (
	CustomersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordering_customers_registered_total",
		Help: "Total number of customers registered.",
	})

	CustomersArchived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordering_customers_archived_total",
		Help: "Total number of customers archived.",
	})

	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordering_orders_placed_total",
		Help: "Total number of orders placed.",
	})

	OrdersCanceled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordering_orders_canceled_total",
		Help: "Total number of orders canceled.",
	})

	CheckoutDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ordering_checkout_duration_seconds",
		Help:    "Time spent converting a shopping cart into a placed order.",
		Buckets: prometheus.DefBuckets,
	})

	StaleWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordering_stale_writes_total",
		Help: "Total number of aggregate saves rejected by the optimistic lock.",
	})
)

// Handler 暴露 Prometheus 抓取端点。
func Handler() http.Handler {
	return promhttp.Handler()
}
