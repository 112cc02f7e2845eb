package service

import (
	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
)

const (
	defaultInsulationVoltage = "1000 VDC"
	defaultInsulationUnits   = "MΩ"
)

var (
	poleLabels        = []string{"P1", "P2", "P3"}
	poleTestLabels    = []string{"Pole to Pole", "Pole to Frame", "Line to Load"}
	windingTestLabels = []string{"H-G", "X-G", "H-X"}
)

// DefaultReportData returns the blank form of a report type: the standard insulation test
// configurations, the absorption rows for switches and transformers and the seven tap rows of a
// transformer turns-ratio test.
func DefaultReportData(reportType api.ReportType) api.ReportData {
	data := api.ReportData{
		Insulation: defaultInsulation(reportType),
	}
	if hasAbsorption(reportType) {
		data.Absorption = defaultAbsorption(reportType)
	}
	if reportType == api.ReportTypeTransformer {
		data.TurnsRatio = defaultTurnsRatio()
	}
	return data
}

func defaultInsulation(reportType api.ReportType) api.InsulationSection {
	section := api.InsulationSection{
		TestVoltage: defaultInsulationVoltage,
		Units:       defaultInsulationUnits,
	}
	if reportType == api.ReportTypeTransformer {
		for _, label := range windingTestLabels {
			section.Rows = append(section.Rows, api.InsulationRow{
				Label:    label,
				Readings: []api.InsulationCell{{Label: "Reading"}},
			})
		}
		return section
	}
	for _, label := range poleTestLabels {
		row := api.InsulationRow{Label: label}
		for _, pole := range poleLabels {
			row.Readings = append(row.Readings, api.InsulationCell{Label: pole})
		}
		section.Rows = append(section.Rows, row)
	}
	return section
}

func defaultAbsorption(reportType api.ReportType) *api.AbsorptionSection {
	labels := poleLabels
	if reportType == api.ReportTypeTransformer {
		labels = windingTestLabels
	}
	section := &api.AbsorptionSection{}
	for _, label := range labels {
		section.Rows = append(section.Rows, api.AbsorptionRow{Label: label})
	}
	return section
}

func defaultTurnsRatio() *api.TurnsRatioSection {
	section := &api.TurnsRatioSection{
		PrimaryConnection:   string(calc.ConnectionDelta),
		SecondaryConnection: string(calc.ConnectionWye),
	}
	for tap := calc.FirstTap; tap <= calc.LastTap; tap++ {
		row := api.TurnsRatioRow{Tap: tap}
		for _, phase := range calc.PhasePairs {
			row.Phases = append(row.Phases, api.PhaseResult{Phase: phase})
		}
		section.Rows = append(section.Rows, row)
	}
	return section
}

func hasAbsorption(reportType api.ReportType) bool {
	return reportType == api.ReportTypeSwitch || reportType == api.ReportTypeTransformer
}

// MergeReportData lays the entered snapshot over the blank form of the report type. Sections
// left out of the snapshot keep their defaults and sections the type does not carry are dropped.
func MergeReportData(reportType api.ReportType, entered *api.ReportData) api.ReportData {
	data := DefaultReportData(reportType)
	if entered == nil {
		return data
	}

	data.Temperature = entered.Temperature
	data.Comments = entered.Comments

	if len(entered.Insulation.Rows) > 0 {
		data.Insulation.Rows = entered.Insulation.Rows
	}
	if entered.Insulation.TestVoltage != "" {
		data.Insulation.TestVoltage = entered.Insulation.TestVoltage
	}
	if entered.Insulation.Units != "" {
		data.Insulation.Units = entered.Insulation.Units
	}
	if data.Absorption != nil && entered.Absorption != nil && len(entered.Absorption.Rows) > 0 {
		data.Absorption = entered.Absorption
	}
	if data.TurnsRatio != nil && entered.TurnsRatio != nil {
		data.TurnsRatio = mergeTurnsRatio(data.TurnsRatio, entered.TurnsRatio)
	}
	return data
}

// mergeTurnsRatio keeps one row per tap. Entered rows replace the blank row of their tap.
func mergeTurnsRatio(blank, entered *api.TurnsRatioSection) *api.TurnsRatioSection {
	merged := *entered
	merged.Rows = make([]api.TurnsRatioRow, len(blank.Rows))
	copy(merged.Rows, blank.Rows)
	if merged.PrimaryConnection == "" {
		merged.PrimaryConnection = blank.PrimaryConnection
	}
	if merged.SecondaryConnection == "" {
		merged.SecondaryConnection = blank.SecondaryConnection
	}
	for _, row := range entered.Rows {
		if row.Tap >= calc.FirstTap && row.Tap <= calc.LastTap {
			merged.Rows[row.Tap-calc.FirstTap] = row
		}
	}
	return &merged
}

// ValidateReportData rejects snapshots the calculators cannot make sense of.
func ValidateReportData(data *api.ReportData) error {
	if p := data.Temperature.Policy; p != "" && !calc.Policy(p).IsValid() {
		return NewErrInvalidReportData("unknown temperature correction policy %q", p)
	}
	switch data.Temperature.Entered {
	case "", api.TemperatureScaleFahrenheit, api.TemperatureScaleCelsius:
	default:
		return NewErrInvalidReportData("unknown temperature scale %q", data.Temperature.Entered)
	}
	if tr := data.TurnsRatio; tr != nil {
		for _, conn := range []string{tr.PrimaryConnection, tr.SecondaryConnection} {
			if conn != "" && !calc.ParseConnection(conn).IsValid() {
				return NewErrInvalidReportData("unknown winding connection %q", conn)
			}
		}
		seen := make(map[int]bool, len(tr.Rows))
		for _, row := range tr.Rows {
			if row.Tap < calc.FirstTap || row.Tap > calc.LastTap {
				return NewErrInvalidReportData("tap %d is outside %d..%d", row.Tap, calc.FirstTap, calc.LastTap)
			}
			if seen[row.Tap] {
				return NewErrInvalidReportData("tap %d is listed twice", row.Tap)
			}
			seen[row.Tap] = true
		}
	}
	return nil
}
