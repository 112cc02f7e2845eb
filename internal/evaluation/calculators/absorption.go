package calculators

import (
	"fmt"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/evaluation"
)

// Compile-time assertion that DielectricAbsorption implements the Calculator interface.
var _ evaluation.Calculator = (*DielectricAbsorption)(nil)

// DielectricAbsorption computes the dielectric absorption ratio and polarization index of each
// absorption row and the report-wide acceptable flag.
type DielectricAbsorption struct{}

func NewDielectricAbsorption() *DielectricAbsorption {
	return &DielectricAbsorption{}
}

func (c *DielectricAbsorption) Name() string {
	return "Dielectric Absorption"
}

func (c *DielectricAbsorption) Supports(reportType api.ReportType) bool {
	return reportType == api.ReportTypeSwitch || reportType == api.ReportTypeTransformer
}

func (c *DielectricAbsorption) Calculate(data *api.ReportData) (evaluation.Outcome, error) {
	if err := requireData(data); err != nil {
		return evaluation.Outcome{}, err
	}
	if data.Absorption == nil {
		return evaluation.Outcome{}, fmt.Errorf("missing absorption section")
	}

	section := data.Absorption
	CalculateAbsorption(section)

	return evaluation.Outcome{
		Fields: 2*len(section.Rows) + 1,
		Reason: fmt.Sprintf("%d rows, acceptable: %s", len(section.Rows), section.Acceptable),
	}, nil
}

// CalculateAbsorption fills the ratios of every row and the acceptable flag of section.
func CalculateAbsorption(section *api.AbsorptionSection) {
	ratios := make([]string, 0, len(section.Rows))
	for i := range section.Rows {
		row := &section.Rows[i]
		row.Ratio = calc.DielectricAbsorptionRatio(row.HalfMinute, row.OneMinute)
		row.PolarizationIndex = calc.PolarizationIndex(row.OneMinute, row.TenMinute)
		ratios = append(ratios, row.Ratio)
	}
	section.Acceptable = calc.AbsorptionAcceptable(ratios)
}
