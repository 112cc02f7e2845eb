package v1alpha1

import (
	"net/http"

	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/handlers/validator"
)

// (POST /api/v1/calculations/temperature)
func (h *ServiceHandler) CalculateTemperature(w http.ResponseWriter, r *http.Request) {
	var req v1alpha1.TemperatureRequest
	if err := decodeAndValidate(r, &req, validator.NewCalculationValidationRules()...); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	resp, err := h.calcSrv.Temperature(req)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// (POST /api/v1/calculations/insulation)
func (h *ServiceHandler) CalculateInsulation(w http.ResponseWriter, r *http.Request) {
	var req v1alpha1.InsulationRequest
	if err := decodeAndValidate(r, &req, validator.NewCalculationValidationRules()...); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	renderJSON(w, r, http.StatusOK, h.calcSrv.Insulation(req))
}

// (POST /api/v1/calculations/absorption)
func (h *ServiceHandler) CalculateAbsorption(w http.ResponseWriter, r *http.Request) {
	var req v1alpha1.AbsorptionRequest
	if err := decodeAndValidate(r, &req, validator.NewCalculationValidationRules()...); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	renderJSON(w, r, http.StatusOK, h.calcSrv.Absorption(req))
}

// (POST /api/v1/calculations/turns-ratio)
func (h *ServiceHandler) CalculateTurnsRatio(w http.ResponseWriter, r *http.Request) {
	var req v1alpha1.TurnsRatioRequest
	if err := decodeAndValidate(r, &req, validator.NewCalculationValidationRules()...); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	resp, err := h.calcSrv.TurnsRatio(req)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, resp)
}
