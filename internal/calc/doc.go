// Package calc holds the engineering calculations shared by every equipment test report.
//
// It converts ambient temperatures and looks up the insulation-resistance temperature
// correction factor (TCF), refers insulation-resistance readings to 20 °C, derives the
// dielectric absorption ratio and polarization index, and evaluates transformer turns-ratio
// deviation against the nameplate ratio.
//
// Every function is pure and never fails on user input: blank, "N/A" or unparsable entries
// propagate as blank outputs. User-entered text crosses into the package exactly once, through
// ParseValue, and leaves through Value.Format.
package calc
