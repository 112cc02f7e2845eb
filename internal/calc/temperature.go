package calc

import (
	"math"
	"strings"
)

// Policy selects how a Celsius temperature is mapped onto the integer-keyed correction table.
type Policy string

const (
	// PolicyRounded rounds Celsius to the nearest integer and reads the table at that key.
	// Temperatures outside the table use a multiplier of 1.
	PolicyRounded Policy = "rounded"
	// PolicyInterpolated keeps fractional Celsius and interpolates linearly between the two
	// bracketing keys. Temperatures outside the table clamp to the boundary multiplier.
	PolicyInterpolated Policy = "interpolated"
)

// ParsePolicy maps a policy name to a Policy. Unknown names fall back to PolicyRounded.
func ParsePolicy(s string) Policy {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyInterpolated:
		return PolicyInterpolated
	default:
		return PolicyRounded
	}
}

func (p Policy) IsValid() bool {
	return p == PolicyRounded || p == PolicyInterpolated
}

// TemperatureReading is the ambient condition recorded on a report.
// Celsius and CorrectionFactor are always derived and never set by hand.
type TemperatureReading struct {
	Fahrenheit       float64
	Celsius          float64
	CorrectionFactor float64
	Humidity         float64
}

// NewReadingFromFahrenheit derives Celsius and the correction factor from a Fahrenheit entry.
func NewReadingFromFahrenheit(fahrenheit, humidity float64, policy Policy) TemperatureReading {
	celsius := FahrenheitToCelsius(fahrenheit, policy)
	return TemperatureReading{
		Fahrenheit:       fahrenheit,
		Celsius:          celsius,
		CorrectionFactor: LookupTCF(celsius, policy),
		Humidity:         humidity,
	}
}

// NewReadingFromCelsius is used when the technician entered Celsius directly.
func NewReadingFromCelsius(celsius, humidity float64, policy Policy) TemperatureReading {
	if policy == PolicyRounded {
		celsius = roundHalfUp(celsius)
	}
	return TemperatureReading{
		Fahrenheit:       CelsiusToFahrenheit(celsius),
		Celsius:          celsius,
		CorrectionFactor: LookupTCF(celsius, policy),
		Humidity:         humidity,
	}
}

// FahrenheitToCelsius converts with (F − 32) × 5 / 9. Under PolicyRounded the result is rounded
// to the nearest integer with halves rounded up.
func FahrenheitToCelsius(fahrenheit float64, policy Policy) float64 {
	celsius := (fahrenheit - 32) * 5 / 9
	if policy == PolicyInterpolated {
		return celsius
	}
	return roundHalfUp(celsius)
}

// CelsiusToFahrenheit converts with C × 9 / 5 + 32.
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// LookupTCF returns the correction multiplier for a Celsius temperature.
func LookupTCF(celsius float64, policy Policy) float64 {
	if math.IsNaN(celsius) {
		return 1
	}
	if policy == PolicyInterpolated {
		return interpolateTCF(celsius)
	}

	if math.IsInf(celsius, 0) {
		return 1
	}
	key := roundHalfUp(celsius)
	if key < MinTableCelsius || key > MaxTableCelsius {
		return 1
	}
	return tcfTable[int(key)]
}

func interpolateTCF(celsius float64) float64 {
	if celsius <= MinTableCelsius {
		return tcfTable[MinTableCelsius]
	}
	if celsius >= MaxTableCelsius {
		return tcfTable[MaxTableCelsius]
	}

	lower := math.Floor(celsius)
	fraction := celsius - lower
	lo := tcfTable[int(lower)]
	if fraction == 0 {
		return lo
	}
	hi := tcfTable[int(lower)+1]
	return lo + (hi-lo)*fraction
}

// TCFTable returns a copy of the correction table keyed by integer Celsius.
func TCFTable() map[int]float64 {
	out := make(map[int]float64, len(tcfTable))
	for k, v := range tcfTable {
		out[k] = v
	}
	return out
}

func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}
