package calculators

import (
	"fmt"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/evaluation"
)

// Compile-time assertion that TurnsRatio implements the Calculator interface.
var _ evaluation.Calculator = (*TurnsRatio)(nil)

// TurnsRatio computes the calculated ratio of every tap and checks each phase pair against it.
type TurnsRatio struct{}

func NewTurnsRatio() *TurnsRatio {
	return &TurnsRatio{}
}

func (c *TurnsRatio) Name() string {
	return "Turns Ratio"
}

func (c *TurnsRatio) Supports(reportType api.ReportType) bool {
	return reportType == api.ReportTypeTransformer
}

func (c *TurnsRatio) Calculate(data *api.ReportData) (evaluation.Outcome, error) {
	if err := requireData(data); err != nil {
		return evaluation.Outcome{}, err
	}
	if data.TurnsRatio == nil {
		return evaluation.Outcome{}, fmt.Errorf("missing turns ratio section")
	}

	summary := CalculateTurnsRatio(data.TurnsRatio)
	return evaluation.Outcome{
		Fields: summary.Fields,
		Reason: fmt.Sprintf("%d taps, %d PASS, %d FAIL", len(data.TurnsRatio.Rows), summary.Pass, summary.Fail),
	}, nil
}

// TurnsRatioSummary counts the outcomes of a turns-ratio section.
type TurnsRatioSummary struct {
	Fields int
	Pass   int
	Fail   int
}

// CalculateTurnsRatio evaluates every row of section in place. Rows are normalized to carry the three
// phase pairs in report order.
func CalculateTurnsRatio(section *api.TurnsRatioSection) TurnsRatioSummary {
	nameplate := calc.Nameplate{
		PrimaryConnection:   calc.ParseConnection(section.PrimaryConnection),
		SecondaryConnection: calc.ParseConnection(section.SecondaryConnection),
		SecondaryVoltage:    section.SecondaryVoltage,
	}

	var summary TurnsRatioSummary
	for i := range section.Rows {
		row := &section.Rows[i]
		evaluated := calc.EvaluateTapRow(toTapRow(*row), nameplate)
		*row = fromTapRow(evaluated)
		summary.Fields++
		for _, p := range row.Phases {
			summary.Fields += 2
			switch calc.Result(p.Result) {
			case calc.ResultPass:
				summary.Pass++
			case calc.ResultFail:
				summary.Fail++
			}
		}
	}
	return summary
}

func toTapRow(row api.TurnsRatioRow) calc.TapRow {
	tap := calc.TapRow{
		Tap:              row.Tap,
		TapVoltage:       row.TapVoltage,
		NameplateVoltage: row.NameplateVoltage,
	}
	for i, phase := range row.Phases {
		if idx := phaseIndex(phase.Phase, i); idx >= 0 {
			tap.Phases[idx].Measured = phase.Measured
		}
	}
	return tap
}

func fromTapRow(tap calc.TapRow) api.TurnsRatioRow {
	row := api.TurnsRatioRow{
		Tap:              tap.Tap,
		TapVoltage:       tap.TapVoltage,
		NameplateVoltage: tap.NameplateVoltage,
		CalculatedRatio:  tap.CalculatedRatio,
		Phases:           make([]api.PhaseResult, len(calc.PhasePairs)),
	}
	for i, name := range calc.PhasePairs {
		row.Phases[i] = api.PhaseResult{
			Phase:            name,
			Measured:         tap.Phases[i].Measured,
			DeviationPercent: tap.Phases[i].DeviationPercent,
			Result:           string(tap.Phases[i].Result),
		}
	}
	return row
}

// phaseIndex locates a phase pair by name, falling back to its position when unnamed.
func phaseIndex(name string, position int) int {
	for i, p := range calc.PhasePairs {
		if p == name {
			return i
		}
	}
	if name == "" && position < len(calc.PhasePairs) {
		return position
	}
	return -1
}
