package service

import (
	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/evaluation/calculators"
	"github.com/voltcheck/voltcheck/pkg/metrics"
)

// CalculationService runs single calculations outside of any stored report.
type CalculationService struct {
	defaultPolicy calc.Policy
}

func NewCalculationService(defaultPolicy calc.Policy) *CalculationService {
	if !defaultPolicy.IsValid() {
		defaultPolicy = calc.PolicyRounded
	}
	return &CalculationService{defaultPolicy: defaultPolicy}
}

// Temperature converts the entered temperature and looks up its correction factor.
// Fahrenheit wins when both scales are given.
func (cs *CalculationService) Temperature(req api.TemperatureRequest) (api.TemperatureResponse, error) {
	policy := cs.defaultPolicy
	if req.Policy != "" {
		policy = calc.ParsePolicy(req.Policy)
	}

	var reading calc.TemperatureReading
	switch {
	case req.Fahrenheit != nil:
		reading = calc.NewReadingFromFahrenheit(*req.Fahrenheit, req.Humidity, policy)
	case req.Celsius != nil:
		reading = calc.NewReadingFromCelsius(*req.Celsius, req.Humidity, policy)
	default:
		return api.TemperatureResponse{}, NewErrInvalidCalculation("either fahrenheit or celsius is required")
	}

	metrics.IncreaseCalculationsMetric("temperature")
	return api.TemperatureResponse{
		Policy:           string(policy),
		Fahrenheit:       calc.RoundTo(reading.Fahrenheit, 1),
		Celsius:          reading.Celsius,
		CorrectionFactor: reading.CorrectionFactor,
		Humidity:         reading.Humidity,
	}, nil
}

// Insulation corrects every reading with the given factor. Readings keep their position.
func (cs *CalculationService) Insulation(req api.InsulationRequest) api.InsulationResponse {
	corrected := make([]string, len(req.Readings))
	for i, raw := range req.Readings {
		corrected[i] = calc.CorrectReading(raw, req.CorrectionFactor)
	}

	metrics.IncreaseCalculationsMetric("insulation")
	return api.InsulationResponse{
		CorrectionFactor: req.CorrectionFactor,
		Corrected:        corrected,
	}
}

func (cs *CalculationService) Absorption(req api.AbsorptionRequest) api.AbsorptionSection {
	section := api.AbsorptionSection{Rows: append([]api.AbsorptionRow(nil), req.Rows...)}
	calculators.CalculateAbsorption(&section)

	metrics.IncreaseCalculationsMetric("absorption")
	return section
}

func (cs *CalculationService) TurnsRatio(req api.TurnsRatioRequest) (api.TurnsRatioSection, error) {
	section := api.TurnsRatioSection{
		PrimaryConnection:   req.PrimaryConnection,
		SecondaryConnection: req.SecondaryConnection,
		SecondaryVoltage:    req.SecondaryVoltage,
		Rows:                append([]api.TurnsRatioRow(nil), req.Rows...),
	}
	if err := ValidateReportData(&api.ReportData{TurnsRatio: &section}); err != nil {
		return api.TurnsRatioSection{}, NewErrInvalidCalculation("%s", err.Error())
	}
	calculators.CalculateTurnsRatio(&section)

	metrics.IncreaseCalculationsMetric("turns-ratio")
	return section, nil
}
