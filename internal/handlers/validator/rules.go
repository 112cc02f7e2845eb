package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func NewJobValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("job_number", jobNumberValidator),
		},
	}
}

func NewReportValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("uuid_set", uuidValidator),
		},
		{
			Rule: registerFn("report_type", reportTypeValidator),
		},
		{
			Rule: registerFn("report_status", reportStatusValidator),
		},
		{
			Rule: registerFn("policy", policyValidator),
		},
		{
			Rule: registerFn("connection", connectionValidator),
		},
	}
}

func NewCalculationValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("policy", policyValidator),
		},
		{
			Rule: registerFn("connection", connectionValidator),
		},
	}
}
