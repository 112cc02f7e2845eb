package v1alpha1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/handlers/validator"
	"github.com/voltcheck/voltcheck/internal/service"
	"github.com/voltcheck/voltcheck/pkg/requestid"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 4 << 20

type ServiceHandler struct {
	jobSrv    *service.JobService
	reportSrv *service.ReportService
	calcSrv   *service.CalculationService
}

func NewServiceHandler(jobService *service.JobService, reportService *service.ReportService, calculationService *service.CalculationService) *ServiceHandler {
	return &ServiceHandler{
		jobSrv:    jobService,
		reportSrv: reportService,
		calcSrv:   calculationService,
	}
}

// RegisterRoutes mounts the API on router.
func (h *ServiceHandler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.Health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/info", h.GetInfo)

		r.Get("/jobs", h.ListJobs)
		r.Post("/jobs", h.CreateJob)
		r.Get("/jobs/{id}", h.GetJob)
		r.Delete("/jobs/{id}", h.DeleteJob)

		r.Get("/reports", h.ListReports)
		r.Post("/reports", h.CreateReport)
		r.Get("/reports/{id}", h.GetReport)
		r.Put("/reports/{id}", h.UpdateReport)
		r.Delete("/reports/{id}", h.DeleteReport)
		r.Get("/reports/{id}/render", h.RenderReport)

		r.Post("/calculations/temperature", h.CalculateTemperature)
		r.Post("/calculations/insulation", h.CalculateInsulation)
		r.Post("/calculations/absorption", h.CalculateAbsorption)
		r.Post("/calculations/turns-ratio", h.CalculateTurnsRatio)
	})
}

func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeAndValidate reads a JSON body into form and checks it against the given rules.
func decodeAndValidate(r *http.Request, form any, rules ...validator.ValidationRule) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("empty body")
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := decoder.Decode(form); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body")
		}
		return fmt.Errorf("malformed body: %w", err)
	}

	v := validator.NewValidator()
	v.Register(rules...)
	return v.Struct(form)
}

func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

func renderJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		zap.S().Named("handler").Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err, "request_id", requestid.FromRequest(r))
	}
	renderJSON(w, r, status, v1alpha1.Error{Message: err.Error(), RequestId: requestid.FromContextPtr(r.Context())})
}

// renderServiceError maps the service error types onto HTTP status codes.
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch err.(type) {
	case *service.ErrResourceNotFound:
		renderError(w, r, http.StatusNotFound, err)
	case *service.ErrDuplicateResource, *service.ErrInvalidStatusTransition, *service.ErrReportLocked:
		renderError(w, r, http.StatusConflict, err)
	case *service.ErrInvalidReportData, *service.ErrUnsupportedFormat, *service.ErrInvalidCalculation:
		renderError(w, r, http.StatusBadRequest, err)
	default:
		renderError(w, r, http.StatusInternalServerError, err)
	}
}
