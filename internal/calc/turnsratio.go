package calc

import "strings"

const (
	// RatioDecimals is the precision of calculated turns ratios.
	RatioDecimals = 3
	// DeviationDecimals is the precision of turns-ratio deviations.
	DeviationDecimals = 3

	// deviationLimit is ±0.5 % widened by 0.001 to keep reports identical to the historical ones.
	deviationLimit = 0.501
)

// Connection is a transformer winding connection.
type Connection string

const (
	ConnectionDelta       Connection = "Delta"
	ConnectionWye         Connection = "Wye"
	ConnectionSinglePhase Connection = "Single Phase"
)

// ParseConnection accepts the usual spellings ("delta", "D", "wye", "Y", "single phase", "1PH").
// Anything else is returned unchanged and never matches a known connection.
func ParseConnection(s string) Connection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "delta", "d":
		return ConnectionDelta
	case "wye", "y", "star":
		return ConnectionWye
	case "single phase", "single-phase", "singlephase", "1ph", "1-phase":
		return ConnectionSinglePhase
	default:
		return Connection(s)
	}
}

func (c Connection) IsValid() bool {
	return c == ConnectionDelta || c == ConnectionWye || c == ConnectionSinglePhase
}

// Result is the PASS/FAIL outcome of a turns-ratio check. The zero value means not evaluated.
type Result string

const (
	ResultPass Result = "PASS"
	ResultFail Result = "FAIL"
	ResultNone Result = ""
)

// Phase pairs measured on a three-phase transformer.
const (
	PhaseH1H2 = "H1-H2"
	PhaseH2H3 = "H2-H3"
	PhaseH3H1 = "H3-H1"
)

// PhasePairs lists the phase pairs in report order.
var PhasePairs = []string{PhaseH1H2, PhaseH2H3, PhaseH3H1}

// Taps are the tap changer positions on a transformer report.
const (
	FirstTap = 1
	LastTap  = 7
)

// Deviation is the outcome of comparing a measured ratio with the calculated one.
type Deviation struct {
	Percent string
	Result  Result
}

// UsesTapVoltage reports whether the ratio for these connections is taken from the primary tap
// voltage (Delta primary feeding a Wye secondary) rather than the nameplate voltage for the tap.
func UsesTapVoltage(primary, secondary Connection) bool {
	return primary == ConnectionDelta && secondary == ConnectionWye
}

// RatioPrimaryVoltage picks the primary voltage a tap row's ratio is computed from.
func RatioPrimaryVoltage(tapVoltage, nameplateVoltage string, primary, secondary Connection) string {
	if UsesTapVoltage(primary, secondary) {
		return tapVoltage
	}
	return nameplateVoltage
}

// CalculatedTurnsRatio divides the primary voltage by the secondary winding voltage with three
// decimals. The connections pick the primary voltage: the tap voltage for a Delta primary feeding a
// Wye secondary, the nameplate voltage for the tap otherwise. The ratio is blank when the secondary
// voltage is zero, absent or not a number.
func CalculatedTurnsRatio(tapVoltage, nameplateVoltage, secondaryVoltage string, primary, secondary Connection) string {
	primaryVoltage := RatioPrimaryVoltage(tapVoltage, nameplateVoltage, primary, secondary)
	return ratioOf(ParseValue(primaryVoltage), ParseValue(secondaryVoltage), RatioDecimals).Format(RatioDecimals)
}

// TurnsRatioDeviationAndResult compares a measured ratio with the calculated ratio.
//
// The deviation is (measured − calculated) / calculated × 100 with three decimals. The check
// passes when −0.501 < deviation < 0.501, evaluated on the three-decimal deviation. Both fields
// are blank when either ratio is missing, not a number, or the calculated ratio is zero.
func TurnsRatioDeviationAndResult(measured, calculated string) Deviation {
	m, ok := ParseValue(measured).Float()
	if !ok {
		return Deviation{}
	}
	c, ok := ParseValue(calculated).Float()
	if !ok || c == 0 {
		return Deviation{}
	}

	deviation := Numeric(RoundTo((m-c)/c*100, DeviationDecimals))
	d, ok := deviation.Float()
	if !ok {
		return Deviation{}
	}

	result := ResultFail
	if d > -deviationLimit && d < deviationLimit {
		result = ResultPass
	}
	return Deviation{Percent: deviation.Format(DeviationDecimals), Result: result}
}

// Nameplate holds the transformer data shared by every tap row.
type Nameplate struct {
	PrimaryConnection   Connection
	SecondaryConnection Connection
	// SecondaryVoltage is line-to-neutral for Wye secondaries and line-to-line for Delta ones.
	SecondaryVoltage string
}

// PhaseReading is one phase-pair measurement of a tap row.
type PhaseReading struct {
	Measured         string
	DeviationPercent string
	Result           Result
}

// TapRow is one tap position of a turns-ratio test.
type TapRow struct {
	Tap              int
	TapVoltage       string
	NameplateVoltage string
	CalculatedRatio  string
	// Phases follow PhasePairs order.
	Phases [3]PhaseReading
}

// EvaluateTapRow fills the calculated ratio of a row and checks every phase pair against it.
func EvaluateTapRow(row TapRow, nameplate Nameplate) TapRow {
	row.CalculatedRatio = CalculatedTurnsRatio(row.TapVoltage, row.NameplateVoltage, nameplate.SecondaryVoltage,
		nameplate.PrimaryConnection, nameplate.SecondaryConnection)
	for i := range row.Phases {
		d := TurnsRatioDeviationAndResult(row.Phases[i].Measured, row.CalculatedRatio)
		row.Phases[i].DeviationPercent = d.Percent
		row.Phases[i].Result = d.Result
	}
	return row
}
