package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarkd_operations_total",
		Help: "Bookmark API operations by outcome.",
	}, []string{"operation", "outcome"})

	UnauthorizedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarkd_unauthorized_total",
		Help: "Requests rejected by the bearer token check.",
	})
)
