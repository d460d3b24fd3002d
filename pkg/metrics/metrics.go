package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type TerminalMetrics struct {
	ItemsReserved *prometheus.CounterVec
	ItemsReleased *prometheus.CounterVec
	Transactions  *prometheus.CounterVec
	SaleAmount    prometheus.Histogram
}

func NewTerminalMetrics() *TerminalMetrics {
	reserved := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pos",
		Name:      "items_reserved_total",
		Help:      "Units reserved from catalog stock by add-to-cart.",
	}, []string{"product"})
	released := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pos",
		Name:      "items_released_total",
		Help:      "Units released back to catalog stock by cart removal or session abandon.",
	}, []string{"product"})
	transactions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pos",
		Name:      "transactions_total",
		Help:      "Checkout attempts by outcome.",
	}, []string{"outcome"})
	sale := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pos",
		Name:      "sale_amount",
		Help:      "Grand total of committed sales.",
		Buckets:   []float64{100, 250, 500, 1000, 2500, 5000, 10000, 25000},
	})

	prometheus.MustRegister(reserved, released, transactions, sale)
	return &TerminalMetrics{
		ItemsReserved: reserved,
		ItemsReleased: released,
		Transactions:  transactions,
		SaleAmount:    sale,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
