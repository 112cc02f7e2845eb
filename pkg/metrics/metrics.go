package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	voltcheck = "voltcheck"

	reportsCreatedTotal   = "reports_created_total"
	turnsRatioChecksTotal = "turns_ratio_checks_total"
	reportRendersTotal    = "report_renders_total"
	calculationsTotal     = "calculations_total"

	// Labels
	reportTypeLabel  = "type"
	resultLabel      = "result"
	formatLabel      = "format"
	calculationLabel = "calculation"
)

var reportsCreatedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: voltcheck,
		Name:      reportsCreatedTotal,
		Help:      "number of reports created by equipment type",
	},
	[]string{reportTypeLabel},
)

var turnsRatioChecksTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: voltcheck,
		Name:      turnsRatioChecksTotal,
		Help:      "number of turns-ratio phase checks evaluated by result",
	},
	[]string{resultLabel},
)

var reportRendersTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: voltcheck,
		Name:      reportRendersTotal,
		Help:      "number of rendered reports by format",
	},
	[]string{formatLabel},
)

var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: voltcheck,
		Name:      calculationsTotal,
		Help:      "number of stand-alone calculation requests by calculation",
	},
	[]string{calculationLabel},
)

func IncreaseReportsCreatedMetric(reportType string) {
	reportsCreatedTotalMetric.With(prometheus.Labels{reportTypeLabel: reportType}).Inc()
}

func IncreaseTurnsRatioChecksMetric(result string, count int) {
	if count <= 0 {
		return
	}
	turnsRatioChecksTotalMetric.With(prometheus.Labels{resultLabel: result}).Add(float64(count))
}

func IncreaseReportRendersMetric(format string) {
	reportRendersTotalMetric.With(prometheus.Labels{formatLabel: format}).Inc()
}

func IncreaseCalculationsMetric(calculation string) {
	calculationsTotalMetric.With(prometheus.Labels{calculationLabel: calculation}).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(reportsCreatedTotalMetric)
	prometheus.MustRegister(turnsRatioChecksTotalMetric)
	prometheus.MustRegister(reportRendersTotalMetric)
	prometheus.MustRegister(calculationsTotalMetric)
}
