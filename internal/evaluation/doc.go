// Package evaluation recomputes the derived fields of a report.
//
// Each derived section of a report (ambient temperature, insulation correction, dielectric absorption,
// turns ratio) is owned by one Calculator, and the Engine runs the calculators that apply to a report type.
package evaluation
