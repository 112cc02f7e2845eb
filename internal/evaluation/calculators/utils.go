package calculators

import (
	"fmt"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/evaluation"
)

// NewDefaultEngine returns an engine with every report calculator registered.
func NewDefaultEngine(defaultPolicy calc.Policy) *evaluation.Engine {
	e := evaluation.NewEngine()
	e.Register(NewTemperatureCorrection(WithDefaultPolicy(defaultPolicy)))
	e.Register(NewInsulationCorrection())
	e.Register(NewDielectricAbsorption())
	e.Register(NewTurnsRatio())
	return e
}

// ambientReading derives the temperature reading of a report section from the scale the technician
// entered. Without a recorded scale Fahrenheit wins over Celsius. The scale actually used is returned;
// ok is false when neither holds a number.
func ambientReading(section api.TemperatureSection, policy calc.Policy) (calc.TemperatureReading, api.TemperatureScale, bool) {
	humidity, _ := calc.ParseValue(section.Humidity).Float()
	f, fOk := calc.ParseValue(section.Fahrenheit).Float()
	c, cOk := calc.ParseValue(section.Celsius).Float()

	if cOk && (section.Entered == api.TemperatureScaleCelsius || !fOk) {
		return calc.NewReadingFromCelsius(c, humidity, policy), api.TemperatureScaleCelsius, true
	}
	if fOk {
		return calc.NewReadingFromFahrenheit(f, humidity, policy), api.TemperatureScaleFahrenheit, true
	}
	return calc.TemperatureReading{}, "", false
}

func sectionPolicy(section api.TemperatureSection, fallback calc.Policy) calc.Policy {
	if section.Policy == "" {
		return fallback
	}
	return calc.ParsePolicy(section.Policy)
}

func requireData(data *api.ReportData) error {
	if data == nil {
		return fmt.Errorf("missing report data")
	}
	return nil
}
