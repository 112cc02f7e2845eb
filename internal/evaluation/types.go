package evaluation

import (
	api "github.com/voltcheck/voltcheck/api/v1alpha1"
)

// Calculator owns the derived fields of one report section.
type Calculator interface {
	// Name returns the human-readable name of this calculator, used as the key in Engine results.
	Name() string
	// Supports tells whether the calculator applies to the given report type.
	Supports(reportType api.ReportType) bool
	// Calculate recomputes the derived fields in data and describes what it did.
	Calculate(data *api.ReportData) (Outcome, error)
}

// Outcome is the result of a Calculator run.
type Outcome struct {
	// Fields is the number of derived fields written.
	Fields int
	Reason string
}
