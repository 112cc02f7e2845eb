package report

import (
	"fmt"
	"time"

	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/service/report/types"
	"github.com/voltcheck/voltcheck/internal/store/model"
)

type StandardReportProcessor struct {
	now func() time.Time
}

func NewStandardReportProcessor() *StandardReportProcessor {
	return &StandardReportProcessor{now: time.Now}
}

func (p *StandardReportProcessor) Process(job *model.Job, report *model.Report) (*types.ReportData, error) {
	if report == nil {
		return nil, fmt.Errorf("missing report")
	}

	form := report.ReportData()
	return &types.ReportData{
		Header:     p.processHeader(job, report),
		Form:       form,
		Summary:    p.processSummary(&form),
		Timestamps: p.generateTimestamps(),
	}, nil
}

func (p *StandardReportProcessor) processHeader(job *model.Job, report *model.Report) types.ReportHeader {
	reportType := v1alpha1.ReportType(report.Type)
	header := types.ReportHeader{
		ReportID:  report.ID.String(),
		Title:     report.Title,
		Type:      reportType,
		TypeName:  types.TypeName(reportType),
		Status:    report.Status,
		Equipment: report.EquipmentData(),
		TestedAt:  report.CreatedAt.Format("January 2, 2006"),
	}
	if job != nil {
		header.JobNumber = job.Number
		header.Customer = job.Customer
		header.Site = job.Site
	}
	return header
}

func (p *StandardReportProcessor) processSummary(form *v1alpha1.ReportData) types.ReportSummary {
	var summary types.ReportSummary

	for _, row := range form.Insulation.Rows {
		for _, cell := range row.Readings {
			if calc.ParseValue(cell.Measured).IsEmpty() {
				continue
			}
			summary.InsulationReadings++
			if calc.ParseValue(cell.Corrected).IsNumeric() {
				summary.CorrectedReadings++
			}
		}
	}

	if form.Absorption != nil {
		summary.AbsorptionAcceptable = form.Absorption.Acceptable
	}

	if form.TurnsRatio != nil {
		for _, row := range form.TurnsRatio.Rows {
			for _, phase := range row.Phases {
				switch calc.Result(phase.Result) {
				case calc.ResultPass:
					summary.TurnsRatioPass++
				case calc.ResultFail:
					summary.TurnsRatioFail++
				}
			}
		}
		switch {
		case summary.TurnsRatioFail > 0:
			summary.TurnsRatioResult = string(calc.ResultFail)
		case summary.TurnsRatioPass > 0:
			summary.TurnsRatioResult = string(calc.ResultPass)
		}
	}

	return summary
}

func (p *StandardReportProcessor) generateTimestamps() types.ReportTimestamps {
	now := p.now()
	return types.ReportTimestamps{
		Generated:     now.Format("January 2, 2006"),
		GeneratedTime: now.Format("3:04 PM"),
	}
}
