// Package metrics holds the process-wide prometheus collectors exposed on /metrics.
package metrics

import (
	"errors"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pos",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pos",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	SalesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pos",
		Name:      "sales_created_total",
		Help:      "Sales committed.",
	})

	GoodsReceiptsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pos",
		Name:      "goods_receipts_created_total",
		Help:      "Goods receipts committed.",
	})

	DebtPaymentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pos",
		Name:      "debt_payments_created_total",
		Help:      "Customer debt payments committed.",
	})

	// TransactionFailures counts rolled back units by operation and error kind.
	TransactionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pos",
		Name:      "transaction_failures_total",
		Help:      "Failed transactional operations by operation and error kind.",
	}, []string{"operation", "kind"})
)

// ErrorKind labels an error for TransactionFailures.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrConflict):
		return "conflict"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return "unauthorized"
	}
	return "internal"
}
