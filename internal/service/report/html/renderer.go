package html

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/voltcheck/voltcheck/internal/service/report/types"
)

// RootClass scopes every rule of the print stylesheet.
const RootClass = "voltcheck-report"

type Renderer struct {
	style types.PrintStyle
	tmpl  *template.Template
}

type templateData struct {
	*types.ReportData
	Style     types.PrintStyle
	RootClass string
}

func NewRenderer(style types.PrintStyle) *Renderer {
	tmpl := template.Must(template.New("report").Funcs(template.FuncMap{
		"resultClass": resultClass,
		"orDash":      orDash,
	}).Parse(reportTemplate))

	return &Renderer{style: style, tmpl: tmpl}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatHTML
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("missing report data")
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, templateData{ReportData: data, Style: r.style, RootClass: RootClass}); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}

	return buf.Bytes(), nil
}

func resultClass(result string) string {
	switch result {
	case "PASS":
		return "pass"
	case "FAIL":
		return "fail"
	default:
		return ""
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
