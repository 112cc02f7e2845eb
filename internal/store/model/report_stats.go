package model

type ReportStats struct {
	TotalJobs    int
	TotalReports int
	// Reports by type (circuit-breaker, switch, transformer)
	ByType map[string]int
	// Reports by status (draft, ready, approved)
	ByStatus   map[string]int
	TurnsRatio TurnsRatioStats
}

// TurnsRatioStats counts the evaluated phase checks over all stored transformer reports.
type TurnsRatioStats struct {
	Pass int
	Fail int
}

func NewReportStats(totalJobs int, reports []Report) ReportStats {
	stats := ReportStats{
		TotalJobs:    totalJobs,
		TotalReports: len(reports),
		ByType:       make(map[string]int),
		ByStatus:     make(map[string]int),
	}

	for _, r := range reports {
		stats.ByType[r.Type]++
		stats.ByStatus[r.Status]++
		stats.TurnsRatio = sum(stats.TurnsRatio, computeTurnsRatioStats(r))
	}

	return stats
}

func computeTurnsRatioStats(r Report) TurnsRatioStats {
	var stats TurnsRatioStats
	data := r.ReportData()
	if data.TurnsRatio == nil {
		return stats
	}
	for _, row := range data.TurnsRatio.Rows {
		for _, p := range row.Phases {
			switch p.Result {
			case "PASS":
				stats.Pass++
			case "FAIL":
				stats.Fail++
			}
		}
	}
	return stats
}

func sum(a, b TurnsRatioStats) TurnsRatioStats {
	return TurnsRatioStats{Pass: a.Pass + b.Pass, Fail: a.Fail + b.Fail}
}
