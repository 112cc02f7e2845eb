package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidForm carries the readable messages of every failed rule.
type ErrInvalidForm struct {
	error
}

var ruleMessages = map[string]string{
	"required":      "is required",
	"job_number":    "must start with a letter or digit and use only letters, digits, '.', '_', '/' or '-' (50 chars max)",
	"report_type":   "must be one of circuit-breaker, switch, transformer",
	"report_status": "must be one of draft, ready, approved",
	"policy":        "must be rounded or interpolated",
	"connection":    "must be Delta, Wye or Single Phase",
	"uuid_set":      "must be a non-empty id",
}

func newErrInvalidForm(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return &ErrInvalidForm{errors.New(strings.Join(messages, "; "))}
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := ruleMessages[fe.Tag()]; ok {
		return fmt.Sprintf("%s %s", fe.Namespace(), msg)
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed on %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag())
}
