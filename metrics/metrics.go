package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsCreated counts successful record creations per entity.
	RecordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qslrm_records_created_total",
		Help: "Number of records created, labelled by entity.",
	}, []string{"entity"})

	// SearchesTotal counts search requests per kind.
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qslrm_searches_total",
		Help: "Number of search requests served, labelled by kind.",
	}, []string{"kind"})

	// HTTPRequests counts handled HTTP requests per method and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qslrm_http_requests_total",
		Help: "Number of HTTP requests handled, labelled by method and status.",
	}, []string{"method", "status"})
)
