package calculators

import (
	"fmt"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/evaluation"
)

const (
	// FactorDecimals is the precision the correction factor is shown with on a report.
	FactorDecimals = 3
)

// Compile-time assertion that TemperatureCorrection implements the Calculator interface.
var _ evaluation.Calculator = (*TemperatureCorrection)(nil)

// TemperatureCorrection derives Celsius and the correction factor from the ambient temperature entered on a report.
type TemperatureCorrection struct {
	defaultPolicy calc.Policy
}

// TemperatureOption is a functional option for configuring a TemperatureCorrection calculator.
type TemperatureOption func(*TemperatureCorrection)

// WithDefaultPolicy sets the policy used by reports that do not carry their own.
// Unknown policies are ignored and the default is kept.
func WithDefaultPolicy(policy calc.Policy) TemperatureOption {
	return func(t *TemperatureCorrection) {
		if policy.IsValid() {
			t.defaultPolicy = policy
		}
	}
}

// NewTemperatureCorrection creates a TemperatureCorrection calculator using the rounded policy by default.
func NewTemperatureCorrection(opts ...TemperatureOption) *TemperatureCorrection {
	res := TemperatureCorrection{
		defaultPolicy: calc.PolicyRounded,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

func (c *TemperatureCorrection) Name() string {
	return "Temperature Correction"
}

func (c *TemperatureCorrection) Supports(api.ReportType) bool {
	return true
}

// Calculate fills the scale that was not entered and the correction factor. The entered value is
// left as typed. The resolved policy and entered scale are written back so later saves derive the
// same way.
func (c *TemperatureCorrection) Calculate(data *api.ReportData) (evaluation.Outcome, error) {
	if err := requireData(data); err != nil {
		return evaluation.Outcome{}, err
	}

	section := &data.Temperature
	policy := sectionPolicy(*section, c.defaultPolicy)
	section.Policy = string(policy)

	reading, scale, ok := ambientReading(*section, policy)
	if !ok {
		section.CorrectionFactor = ""
		return evaluation.Outcome{Reason: "no ambient temperature entered"}, nil
	}

	section.Entered = scale
	if scale == api.TemperatureScaleCelsius {
		section.Fahrenheit = calc.FormatFixed(reading.Fahrenheit, 1)
	} else {
		section.Celsius = formatCelsius(reading.Celsius, policy)
	}
	section.CorrectionFactor = calc.FormatFixed(reading.CorrectionFactor, FactorDecimals)

	return evaluation.Outcome{
		Fields: 2,
		Reason: fmt.Sprintf("%s°F is %s°C, correction factor %s (%s)", section.Fahrenheit, section.Celsius, section.CorrectionFactor, policy),
	}, nil
}

func formatCelsius(celsius float64, policy calc.Policy) string {
	if policy == calc.PolicyInterpolated {
		return calc.FormatFixed(celsius, 1)
	}
	return calc.FormatFixed(celsius, 0)
}
