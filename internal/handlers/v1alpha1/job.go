package v1alpha1

import (
	"net/http"
	"strconv"

	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/handlers/v1alpha1/mappers"
	"github.com/voltcheck/voltcheck/internal/handlers/validator"
	"github.com/voltcheck/voltcheck/internal/service"
	srvMappers "github.com/voltcheck/voltcheck/internal/service/mappers"
)

// (GET /api/v1/jobs)
func (h *ServiceHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.NewJobFilter().
		WithNumber(query.Get("number")).
		WithCustomer(query.Get("customer"))

	limit, offset, err := pageParams(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	filter = filter.WithLimit(limit).WithOffset(offset)

	jobs, err := h.jobSrv.ListJobs(r.Context(), filter)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, srvMappers.JobListToApi(jobs))
}

// (POST /api/v1/jobs)
func (h *ServiceHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var form v1alpha1.JobCreate
	if err := decodeAndValidate(r, &form, validator.NewJobValidationRules()...); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	job, err := h.jobSrv.CreateJob(r.Context(), mappers.JobFormApi(form))
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, srvMappers.JobToApi(*job))
}

// (GET /api/v1/jobs/{id})
func (h *ServiceHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	job, err := h.jobSrv.GetJob(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, srvMappers.JobToApi(*job))
}

// (DELETE /api/v1/jobs/{id})
func (h *ServiceHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	if err := h.jobSrv.DeleteJob(r.Context(), id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, v1alpha1.Status{Message: "job deleted"})
}

func pageParams(r *http.Request) (limit, offset int, err error) {
	query := r.URL.Query()
	if v := query.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
			return 0, 0, errInvalidQuery("limit", v)
		}
	}
	if v := query.Get("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, errInvalidQuery("offset", v)
		}
	}
	return limit, offset, nil
}
