package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScansStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gvmgw_scans_started_total",
		Help: "Scan tasks successfully started on gvmd.",
	})

	ScanFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gvmgw_scan_failures_total",
		Help: "Trigger-scan requests that failed at any orchestration step.",
	})

	ReportsFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gvmgw_reports_fetched_total",
		Help: "Reports successfully retrieved from gvmd.",
	})
)
