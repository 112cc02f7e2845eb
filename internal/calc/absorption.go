package calc

// AbsorptionDecimals is the precision of dielectric absorption ratios and polarization indexes.
const AbsorptionDecimals = 2

const (
	Yes = "Yes"
	No  = "No"
)

// DielectricAbsorptionRatio divides the one-minute reading by the half-minute reading.
// The ratio is blank unless both readings are finite numbers and the quotient is finite.
func DielectricAbsorptionRatio(halfMinute, oneMinute string) string {
	return ratioOf(ParseValue(oneMinute), ParseValue(halfMinute), AbsorptionDecimals).Format(AbsorptionDecimals)
}

// PolarizationIndex divides the ten-minute reading by the one-minute reading, with the same
// rules as DielectricAbsorptionRatio.
func PolarizationIndex(oneMinute, tenMinute string) string {
	return ratioOf(ParseValue(tenMinute), ParseValue(oneMinute), AbsorptionDecimals).Format(AbsorptionDecimals)
}

// AbsorptionAcceptable reports Yes when every ratio is a number strictly greater than 1.
// A blank ratio, an "N/A" ratio or an empty list yields No.
func AbsorptionAcceptable(ratios []string) string {
	if len(ratios) == 0 {
		return No
	}
	for _, r := range ratios {
		f, ok := ParseValue(r).Float()
		if !ok || f <= 1 {
			return No
		}
	}
	return Yes
}

func ratioOf(numerator, denominator Value, decimals int) Value {
	n, ok := numerator.Float()
	if !ok {
		return Empty()
	}
	d, ok := denominator.Float()
	if !ok || d == 0 {
		return Empty()
	}
	return Numeric(RoundTo(n/d, decimals))
}
