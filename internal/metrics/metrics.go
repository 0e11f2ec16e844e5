package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Business Metrics
var (
	ItemsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_items_created_total",
			Help: "Total number of inventory items created",
		},
	)

	ItemsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_items_updated_total",
			Help: "Total number of inventory items updated",
		},
	)

	ItemsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_items_deleted_total",
			Help: "Total number of inventory items deleted",
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)
)

// Stock gauges, refreshed periodically from the store
var (
	StockTotalItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_stock_items",
			Help: "Number of inventory items in the store",
		},
	)

	StockActiveItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_stock_active_items",
			Help: "Number of active inventory items",
		},
	)

	StockLowItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_stock_low_items",
			Help: "Number of items at or below the low stock threshold",
		},
	)

	StockTotalValue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_stock_total_value",
			Help: "Total stock value, price times quantity over all items",
		},
	)
)
