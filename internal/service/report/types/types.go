package types

import (
	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/store/model"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
	ContentType() string
}

type ReportProcessor interface {
	Process(job *model.Job, report *model.Report) (*ReportData, error)
}

type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatHTML ReportFormat = "html"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ReportData is everything a renderer needs to print one report.
type ReportData struct {
	Header     ReportHeader
	Form       v1alpha1.ReportData
	Summary    ReportSummary
	Timestamps ReportTimestamps
}

type ReportHeader struct {
	ReportID  string
	Title     string
	Type      v1alpha1.ReportType
	TypeName  string
	Status    string
	JobNumber string
	Customer  string
	Site      string
	Equipment v1alpha1.Equipment
	TestedAt  string
}

type ReportSummary struct {
	InsulationReadings   int
	CorrectedReadings    int
	AbsorptionAcceptable string
	TurnsRatioPass       int
	TurnsRatioFail       int
	// TurnsRatioResult is PASS when every evaluated phase passed, FAIL when one failed and
	// empty when nothing was evaluated.
	TurnsRatioResult string
}

type ReportTimestamps struct {
	Generated     string
	GeneratedTime string
}

// PrintStyle configures the printed page. It is rendered inside the document's own
// stylesheet, scoped to the report root element.
type PrintStyle struct {
	PageSize    string
	Orientation string
	MarginMM    int
	FontSizePt  float64
}

func DefaultPrintStyle() PrintStyle {
	return PrintStyle{
		PageSize:    "letter",
		Orientation: "portrait",
		MarginMM:    12,
		FontSizePt:  9,
	}
}

// TypeName is the printed name of a report type.
func TypeName(t v1alpha1.ReportType) string {
	switch t {
	case v1alpha1.ReportTypeCircuitBreaker:
		return "Circuit Breaker"
	case v1alpha1.ReportTypeSwitch:
		return "Switch"
	case v1alpha1.ReportTypeTransformer:
		return "Transformer"
	default:
		return string(t)
	}
}
