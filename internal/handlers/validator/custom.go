package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
)

var jobNumberRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/-]{0,49}$`)

func jobNumberValidator(fl validator.FieldLevel) bool {
	return jobNumberRegex.MatchString(fl.Field().String())
}

func reportTypeValidator(fl validator.FieldLevel) bool {
	_, ok := v1alpha1.StringToReportType(fl.Field().String())
	return ok
}

func reportStatusValidator(fl validator.FieldLevel) bool {
	switch v1alpha1.ReportStatus(fl.Field().String()) {
	case v1alpha1.ReportStatusDraft, v1alpha1.ReportStatusReady, v1alpha1.ReportStatusApproved:
		return true
	default:
		return false
	}
}

func policyValidator(fl validator.FieldLevel) bool {
	return calc.Policy(fl.Field().String()).IsValid()
}

// connectionValidator accepts every spelling the calculators understand ("Delta", "D", "wye"...).
func connectionValidator(fl validator.FieldLevel) bool {
	return calc.ParseConnection(fl.Field().String()).IsValid()
}

func uuidValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(uuid.UUID)
	if !ok {
		return false
	}
	return val != uuid.Nil
}
