// Package calculators provides the concrete Calculator implementations for the evaluation engine.
//
// Each calculator recomputes the derived fields of one report section from the values entered by the
// technician, using the formulas of the calc package. Calculators are composed via evaluation.Engine;
// NewDefaultEngine registers them in the order their outputs depend on each other.
package calculators
