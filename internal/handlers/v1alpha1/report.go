package v1alpha1

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/handlers/v1alpha1/mappers"
	"github.com/voltcheck/voltcheck/internal/handlers/validator"
	"github.com/voltcheck/voltcheck/internal/service"
	srvMappers "github.com/voltcheck/voltcheck/internal/service/mappers"
	"github.com/voltcheck/voltcheck/internal/service/report/types"
)

// (GET /api/v1/reports)
func (h *ServiceHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.NewReportFilter().
		WithTitleLike(query.Get("title")).
		WithStatus(query.Get("status"))

	if v := query.Get("jobId"); v != "" {
		jobID, err := uuid.Parse(v)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, errInvalidQuery("jobId", v))
			return
		}
		filter = filter.WithJobID(jobID)
	}
	if v := query.Get("type"); v != "" {
		if _, ok := v1alpha1.StringToReportType(v); !ok {
			renderError(w, r, http.StatusBadRequest, errInvalidQuery("type", v))
			return
		}
		filter = filter.WithType(v)
	}

	limit, offset, err := pageParams(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	filter = filter.WithLimit(limit).WithOffset(offset)

	reports, err := h.reportSrv.ListReports(r.Context(), filter)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, srvMappers.ReportListToApi(reports))
}

// (POST /api/v1/reports)
func (h *ServiceHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var form v1alpha1.ReportCreate
	if err := decodeAndValidate(r, &form, validator.NewReportValidationRules()...); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	report, err := h.reportSrv.CreateReport(r.Context(), mappers.ReportFormApi(form))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, srvMappers.ReportToApi(*report))
}

// (GET /api/v1/reports/{id})
func (h *ServiceHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	report, err := h.reportSrv.GetReport(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, srvMappers.ReportToApi(*report))
}

// (PUT /api/v1/reports/{id})
func (h *ServiceHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	var form v1alpha1.ReportUpdate
	if err := decodeAndValidate(r, &form, validator.NewReportValidationRules()...); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	report, err := h.reportSrv.UpdateReport(r.Context(), id, mappers.ReportUpdateFormApi(form))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, srvMappers.ReportToApi(*report))
}

// (DELETE /api/v1/reports/{id})
func (h *ServiceHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	if err := h.reportSrv.DeleteReport(r.Context(), id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, v1alpha1.Status{Message: "report deleted"})
}

// (GET /api/v1/reports/{id}/render)
func (h *ServiceHandler) RenderReport(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = string(types.ReportFormatHTML)
	}

	content, contentType, err := h.reportSrv.RenderReport(r.Context(), id, format)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.Header().Set("Content-Disposition", mappers.ContentDisposition(id.String(), types.ReportFormat(format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func errInvalidQuery(name, value string) error {
	return fmt.Errorf("invalid %s %q", name, value)
}
