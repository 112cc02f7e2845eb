package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/voltcheck/voltcheck/internal/store"
	"go.uber.org/zap"
)

type reportStatsCollector struct {
	store              store.Store
	totalJobs          *prometheus.Desc
	totalReports       *prometheus.Desc
	reportsByType      *prometheus.Desc
	reportsByStatus    *prometheus.Desc
	turnsRatioByResult *prometheus.Desc
}

// NewReportStatsCollector exposes the stored jobs and reports as gauges, read from the store on every scrape.
func NewReportStatsCollector(s store.Store) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_store_%s", voltcheck, name)
	}

	return &reportStatsCollector{
		store: s,
		totalJobs: prometheus.NewDesc(
			fqName("jobs"),
			"Number of stored jobs.",
			nil,
			prometheus.Labels{},
		),
		totalReports: prometheus.NewDesc(
			fqName("reports"),
			"Number of stored reports.",
			nil,
			prometheus.Labels{},
		),
		reportsByType: prometheus.NewDesc(
			fqName("reports_by_type"),
			"Stored reports by equipment type.",
			[]string{reportTypeLabel},
			prometheus.Labels{},
		),
		reportsByStatus: prometheus.NewDesc(
			fqName("reports_by_status"),
			"Stored reports by review status.",
			[]string{"status"},
			prometheus.Labels{},
		),
		turnsRatioByResult: prometheus.NewDesc(
			fqName("turns_ratio_phases"),
			"Turns-ratio phase results stored in transformer reports.",
			[]string{resultLabel},
			prometheus.Labels{},
		),
	}
}

func (c *reportStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalJobs
	ch <- c.totalReports
	ch <- c.reportsByType
	ch <- c.reportsByStatus
	ch <- c.turnsRatioByResult
}

func (c *reportStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.store.Statistics(context.Background())
	if err != nil {
		zap.S().Named("report_collector").Errorw("failed to collect report statistics", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.totalJobs, prometheus.GaugeValue, float64(stats.TotalJobs))
	ch <- prometheus.MustNewConstMetric(c.totalReports, prometheus.GaugeValue, float64(stats.TotalReports))

	for reportType, total := range stats.ByType {
		ch <- prometheus.MustNewConstMetric(c.reportsByType, prometheus.GaugeValue, float64(total), reportType)
	}

	for status, total := range stats.ByStatus {
		ch <- prometheus.MustNewConstMetric(c.reportsByStatus, prometheus.GaugeValue, float64(total), status)
	}

	ch <- prometheus.MustNewConstMetric(c.turnsRatioByResult, prometheus.GaugeValue, float64(stats.TurnsRatio.Pass), "PASS")
	ch <- prometheus.MustNewConstMetric(c.turnsRatioByResult, prometheus.GaugeValue, float64(stats.TurnsRatio.Fail), "FAIL")
}
