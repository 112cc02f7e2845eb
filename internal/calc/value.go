package calc

import (
	"math"
	"strconv"
	"strings"
)

// Kind tells which variant a Value holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindNotApplicable
	KindNumeric
)

const notApplicableText = "N/A"

func (k Kind) String() string {
	switch k {
	case KindNotApplicable:
		return "not-applicable"
	case KindNumeric:
		return "numeric"
	default:
		return "empty"
	}
}

// Value is a user-entered report cell: nothing entered, explicitly "N/A", or a finite number.
// The zero Value is Empty.
type Value struct {
	kind Kind
	num  float64
}

func Empty() Value { return Value{} }

func NotApplicable() Value { return Value{kind: KindNotApplicable} }

// Numeric wraps f. Non-finite numbers collapse to Empty so that NaN and Inf never reach a report.
func Numeric(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Empty()
	}
	return Value{kind: KindNumeric, num: f}
}

// ParseValue reads a cell as typed by a technician.
//
// Surrounding whitespace is ignored. "" is Empty, "N/A" and "NA" (any case) are NotApplicable,
// a finite decimal number is Numeric and anything else is Empty.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Empty()
	}
	if strings.EqualFold(s, notApplicableText) || strings.EqualFold(s, "NA") {
		return NotApplicable()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Empty()
	}
	return Numeric(f)
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

func (v Value) IsNotApplicable() bool { return v.kind == KindNotApplicable }

func (v Value) IsNumeric() bool { return v.kind == KindNumeric }

// Float returns the number held by v and whether v is Numeric.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumeric {
		return 0, false
	}
	return v.num, true
}

// Format renders v with a fixed number of decimals. Empty renders as "" and NotApplicable as "N/A".
// A negative decimals value prints the shortest representation of the number.
func (v Value) Format(decimals int) string {
	switch v.kind {
	case KindNotApplicable:
		return notApplicableText
	case KindNumeric:
		if decimals < 0 {
			return strconv.FormatFloat(v.num, 'f', -1, 64)
		}
		return FormatFixed(v.num, decimals)
	default:
		return ""
	}
}

func (v Value) String() string {
	return v.Format(-1)
}
