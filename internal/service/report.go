package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/evaluation"
	"github.com/voltcheck/voltcheck/internal/events"
	"github.com/voltcheck/voltcheck/internal/service/mappers"
	"github.com/voltcheck/voltcheck/internal/service/report"
	"github.com/voltcheck/voltcheck/internal/service/report/csv"
	"github.com/voltcheck/voltcheck/internal/service/report/html"
	"github.com/voltcheck/voltcheck/internal/service/report/types"
	"github.com/voltcheck/voltcheck/internal/service/report/xlsx"
	"github.com/voltcheck/voltcheck/internal/store"
	"github.com/voltcheck/voltcheck/internal/store/model"
	"github.com/voltcheck/voltcheck/pkg/metrics"
)

type ReportFormat = types.ReportFormat

// allowedTransitions lists the statuses a report may move to from each status.
// An approved report is final.
var allowedTransitions = map[api.ReportStatus][]api.ReportStatus{
	api.ReportStatusDraft: {api.ReportStatusReady},
	api.ReportStatusReady: {api.ReportStatusDraft, api.ReportStatusApproved},
}

type ReportService struct {
	store     store.Store
	engine    *evaluation.Engine
	processor types.ReportProcessor
	renderers map[types.ReportFormat]types.ReportRenderer
	events    EventWriter
}

// NewReportService builds the service. Without renderers the HTML (default print style), CSV and
// XLSX renderers are registered.
func NewReportService(store store.Store, engine *evaluation.Engine, renderers ...types.ReportRenderer) *ReportService {
	if len(renderers) == 0 {
		renderers = []types.ReportRenderer{
			html.NewRenderer(types.DefaultPrintStyle()),
			csv.NewRenderer(),
			xlsx.NewRenderer(),
		}
	}

	rs := &ReportService{
		store:     store,
		engine:    engine,
		processor: report.NewStandardReportProcessor(),
		renderers: make(map[types.ReportFormat]types.ReportRenderer, len(renderers)),
	}
	for _, r := range renderers {
		rs.renderers[r.SupportedFormat()] = r
	}
	return rs
}

// WithEventWriter makes the service publish report lifecycle events.
func (rs *ReportService) WithEventWriter(w EventWriter) *ReportService {
	rs.events = w
	return rs
}

type ReportFilter struct {
	JobID     uuid.UUID
	Type      string
	Status    string
	TitleLike string
	Limit     int
	Offset    int
}

func NewReportFilter() *ReportFilter {
	return &ReportFilter{}
}

func (f *ReportFilter) WithJobID(jobID uuid.UUID) *ReportFilter {
	f.JobID = jobID
	return f
}

func (f *ReportFilter) WithType(reportType string) *ReportFilter {
	f.Type = reportType
	return f
}

func (f *ReportFilter) WithStatus(status string) *ReportFilter {
	f.Status = status
	return f
}

func (f *ReportFilter) WithTitleLike(pattern string) *ReportFilter {
	f.TitleLike = pattern
	return f
}

func (f *ReportFilter) WithLimit(limit int) *ReportFilter {
	f.Limit = limit
	return f
}

func (f *ReportFilter) WithOffset(offset int) *ReportFilter {
	f.Offset = offset
	return f
}

func (rs *ReportService) ListReports(ctx context.Context, filter *ReportFilter) (model.ReportList, error) {
	if filter == nil {
		filter = NewReportFilter()
	}

	storeFilter := store.NewReportQueryFilter()
	if filter.JobID != uuid.Nil {
		storeFilter = storeFilter.ByJobID(filter.JobID)
	}
	if filter.Type != "" {
		storeFilter = storeFilter.ByType(filter.Type)
	}
	if filter.Status != "" {
		storeFilter = storeFilter.ByStatus(filter.Status)
	}
	if filter.TitleLike != "" {
		storeFilter = storeFilter.ByTitleLike(filter.TitleLike)
	}

	reports, err := rs.store.Report().List(ctx, storeFilter, pageOptions(filter.Limit, filter.Offset))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func (rs *ReportService) GetReport(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	r, err := rs.store.Report().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrReportNotFound(id)
		}
		return nil, fmt.Errorf("failed to get report %s: %w", id, err)
	}
	return r, nil
}

// CreateReport files a draft report under an existing job. The entered snapshot is laid over the
// blank form of the report type and every derived value is computed before saving.
func (rs *ReportService) CreateReport(ctx context.Context, form mappers.ReportCreateForm) (*model.Report, error) {
	logger := zap.S().Named("report_service")

	reportType, ok := api.StringToReportType(string(form.Type))
	if !ok {
		return nil, NewErrInvalidReportData("unknown report type %q", form.Type)
	}
	if form.Data != nil {
		if err := ValidateReportData(form.Data); err != nil {
			return nil, err
		}
	}

	if _, err := rs.store.Job().Get(ctx, form.JobID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(form.JobID)
		}
		return nil, fmt.Errorf("failed to get job %s: %w", form.JobID, err)
	}

	data := MergeReportData(reportType, form.Data)
	rs.recalculate(reportType, &data)

	r := form.ToReport(data)
	r.JobID = form.JobID

	created, err := rs.store.Report().Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	metrics.IncreaseReportsCreatedMetric(string(reportType))
	logger.Infow("report created", "report_id", created.ID, "job_id", created.JobID, "type", created.Type)
	writeEvent(ctx, rs.events, events.ReportMessageKind, reportEvent(events.ActionCreated, created, ""))
	return created, nil
}

// UpdateReport applies the form to the report. A new snapshot replaces the stored one and is
// recomputed; the last write wins. Approved reports only accept a no-op status change.
func (rs *ReportService) UpdateReport(ctx context.Context, id uuid.UUID, form mappers.ReportUpdateForm) (*model.Report, error) {
	logger := zap.S().Named("report_service")

	r, err := rs.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if form.IsEmpty() {
		return r, nil
	}

	previous := r.Status
	current := api.StringToReportStatus(r.Status)
	if current == api.ReportStatusApproved && (form.Title != nil || form.Equipment != nil || form.Data != nil) {
		return nil, NewErrReportLocked(id)
	}

	if form.Status != nil && *form.Status != current {
		if !canTransition(current, *form.Status) {
			return nil, NewErrInvalidStatusTransition(string(current), string(*form.Status))
		}
		r.Status = string(*form.Status)
	}
	if form.Title != nil {
		r.Title = strings.TrimSpace(*form.Title)
	}
	if form.Equipment != nil {
		r.Equipment = model.MakeJSONField(*form.Equipment)
	}
	if form.Data != nil {
		if err := ValidateReportData(form.Data); err != nil {
			return nil, err
		}
		reportType := api.ReportType(r.Type)
		data := MergeReportData(reportType, form.Data)
		rs.recalculate(reportType, &data)
		r.Data = model.MakeJSONField(data)
	}

	updated, err := rs.store.Report().Update(ctx, *r)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrReportNotFound(id)
		}
		return nil, fmt.Errorf("failed to update report %s: %w", id, err)
	}

	logger.Infow("report updated", "report_id", id, "status", updated.Status)
	if updated.Status != previous {
		writeEvent(ctx, rs.events, events.ReportMessageKind, reportEvent(events.ActionStatusChanged, updated, previous))
	}
	return updated, nil
}

func (rs *ReportService) DeleteReport(ctx context.Context, id uuid.UUID) error {
	r, err := rs.GetReport(ctx, id)
	if err != nil {
		return err
	}
	if err := rs.store.Report().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete report %s: %w", id, err)
	}
	zap.S().Named("report_service").Infow("report deleted", "report_id", id)
	writeEvent(ctx, rs.events, events.ReportMessageKind, reportEvent(events.ActionDeleted, r, ""))
	return nil
}

// RenderReport prints the report in the given format and returns the document with its content type.
func (rs *ReportService) RenderReport(ctx context.Context, id uuid.UUID, format string) ([]byte, string, error) {
	renderer, ok := rs.renderers[types.ReportFormat(strings.ToLower(strings.TrimSpace(format)))]
	if !ok {
		return nil, "", NewErrUnsupportedFormat(format)
	}

	r, err := rs.GetReport(ctx, id)
	if err != nil {
		return nil, "", err
	}

	job, err := rs.store.Job().Get(ctx, r.JobID)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to get job %s: %w", r.JobID, err)
	}

	data, err := rs.processor.Process(job, r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to process report %s: %w", id, err)
	}

	content, err := renderer.Render(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render report %s as %s: %w", id, renderer.SupportedFormat(), err)
	}

	metrics.IncreaseReportRendersMetric(string(renderer.SupportedFormat()))
	return content, renderer.ContentType(), nil
}

// SupportedFormats lists the registered render formats.
func (rs *ReportService) SupportedFormats() []ReportFormat {
	formats := make([]ReportFormat, 0, len(rs.renderers))
	for _, f := range []ReportFormat{types.ReportFormatHTML, types.ReportFormatCSV, types.ReportFormatXLSX} {
		if _, ok := rs.renderers[f]; ok {
			formats = append(formats, f)
		}
	}
	return formats
}

func (rs *ReportService) recalculate(reportType api.ReportType, data *api.ReportData) {
	results := rs.engine.Run(reportType, data)
	for name, outcome := range results {
		zap.S().Named("report_service").Debugw("calculator finished", "calculator", name, "fields", outcome.Fields, "reason", outcome.Reason)
	}

	if data.TurnsRatio == nil {
		return
	}
	var pass, fail int
	for _, row := range data.TurnsRatio.Rows {
		for _, p := range row.Phases {
			switch calc.Result(p.Result) {
			case calc.ResultPass:
				pass++
			case calc.ResultFail:
				fail++
			}
		}
	}
	metrics.IncreaseTurnsRatioChecksMetric(string(calc.ResultPass), pass)
	metrics.IncreaseTurnsRatioChecksMetric(string(calc.ResultFail), fail)
}

func reportEvent(action string, r *model.Report, previous string) events.ReportEvent {
	return events.ReportEvent{
		ReportID:       r.ID.String(),
		JobID:          r.JobID.String(),
		Type:           r.Type,
		Action:         action,
		Status:         r.Status,
		PreviousStatus: previous,
	}
}

func canTransition(from, to api.ReportStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
