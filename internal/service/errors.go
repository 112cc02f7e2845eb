package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrJobNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "job")
}

func NewErrReportNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "report")
}

type ErrDuplicateResource struct {
	error
}

func NewErrDuplicateJobNumber(number string) *ErrDuplicateResource {
	return &ErrDuplicateResource{fmt.Errorf("job with number %q already exists", number)}
}

type ErrInvalidStatusTransition struct {
	error
}

func NewErrInvalidStatusTransition(from, to string) *ErrInvalidStatusTransition {
	return &ErrInvalidStatusTransition{fmt.Errorf("report status cannot change from %q to %q", from, to)}
}

// ErrReportLocked is returned when an approved report is edited.
type ErrReportLocked struct {
	error
}

func NewErrReportLocked(id uuid.UUID) *ErrReportLocked {
	return &ErrReportLocked{fmt.Errorf("report %s is approved and can no longer be edited", id)}
}

type ErrInvalidReportData struct {
	error
}

func NewErrInvalidReportData(format string, args ...any) *ErrInvalidReportData {
	return &ErrInvalidReportData{fmt.Errorf("invalid report data: %s", fmt.Sprintf(format, args...))}
}

type ErrUnsupportedFormat struct {
	error
}

func NewErrUnsupportedFormat(format string) *ErrUnsupportedFormat {
	return &ErrUnsupportedFormat{fmt.Errorf("unsupported report format %q", format)}
}

type ErrInvalidCalculation struct {
	error
}

func NewErrInvalidCalculation(format string, args ...any) *ErrInvalidCalculation {
	return &ErrInvalidCalculation{fmt.Errorf(format, args...)}
}
