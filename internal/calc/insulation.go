package calc

import "math"

// InsulationDecimals is the precision of corrected insulation-resistance readings.
const InsulationDecimals = 2

// Measurement is an insulation-resistance reading that may not have been entered yet.
type Measurement struct {
	Value float64
	Empty bool
}

// CorrectMeasurement refers a reading to 20 °C by multiplying it with tcf.
//
// Empty readings stay empty. A zero, negative or non-finite tcf leaves the reading uncorrected.
// The result is rounded to two decimals either way.
func CorrectMeasurement(m Measurement, tcf float64) Measurement {
	if m.Empty {
		return Measurement{Empty: true}
	}
	v := CorrectValue(Numeric(m.Value), tcf)
	f, ok := v.Float()
	if !ok {
		return Measurement{Empty: true}
	}
	return Measurement{Value: f}
}

// CorrectValue applies the temperature correction to a parsed cell. Empty and NotApplicable
// cells pass through untouched.
func CorrectValue(v Value, tcf float64) Value {
	measured, ok := v.Float()
	if !ok {
		return v
	}
	if !validFactor(tcf) {
		return Numeric(RoundTo(measured, InsulationDecimals))
	}
	return Numeric(RoundTo(measured*tcf, InsulationDecimals))
}

// CorrectReading is CorrectValue for raw cell text. It returns "" for blank or unparsable text,
// "N/A" for "N/A" and the corrected reading with two decimals otherwise.
func CorrectReading(raw string, tcf float64) string {
	return CorrectValue(ParseValue(raw), tcf).Format(InsulationDecimals)
}

func validFactor(tcf float64) bool {
	return tcf > 0 && !math.IsInf(tcf, 0) && !math.IsNaN(tcf)
}
