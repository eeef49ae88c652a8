package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger workflow counters, exposed on /metrics.
var (
	SessionsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_sessions_built_total",
		Help: "Number of ledger sessions built from a department and month range.",
	})

	CorrectionApprovals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "correction_approvals_total",
		Help: "Number of correction requests approved.",
	})

	CorrectionRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "correction_rejections_total",
		Help: "Number of correction requests rejected.",
	})

	Exports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_exports_total",
		Help: "Number of CSV exports rendered.",
	})
)
