package calculators

import (
	"fmt"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/evaluation"
)

// Compile-time assertion that InsulationCorrection implements the Calculator interface.
var _ evaluation.Calculator = (*InsulationCorrection)(nil)

// InsulationCorrection refers every insulation-resistance reading of a report to 20 °C.
type InsulationCorrection struct{}

func NewInsulationCorrection() *InsulationCorrection {
	return &InsulationCorrection{}
}

func (c *InsulationCorrection) Name() string {
	return "Insulation Correction"
}

func (c *InsulationCorrection) Supports(api.ReportType) bool {
	return true
}

// Calculate corrects each reading with the factor of the report's ambient temperature. The factor is
// derived from the temperature section directly, at full precision, so it does not depend on the
// rounded factor shown on the report. Without an ambient temperature readings are copied uncorrected.
func (c *InsulationCorrection) Calculate(data *api.ReportData) (evaluation.Outcome, error) {
	if err := requireData(data); err != nil {
		return evaluation.Outcome{}, err
	}

	policy := sectionPolicy(data.Temperature, calc.PolicyRounded)
	tcf := 0.0
	if reading, _, ok := ambientReading(data.Temperature, policy); ok {
		tcf = reading.CorrectionFactor
	}

	fields := 0
	for i := range data.Insulation.Rows {
		row := &data.Insulation.Rows[i]
		for j := range row.Readings {
			row.Readings[j].Corrected = calc.CorrectReading(row.Readings[j].Measured, tcf)
			fields++
		}
	}

	reason := fmt.Sprintf("%d readings corrected with factor %s", fields, calc.FormatFixed(tcf, FactorDecimals))
	if tcf == 0 {
		reason = fmt.Sprintf("%d readings copied without correction", fields)
	}
	return evaluation.Outcome{Fields: fields, Reason: reason}, nil
}
