package mappers

import (
	"strings"

	"github.com/google/uuid"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/store/model"
)

type JobCreateForm struct {
	Number   string
	Customer string
	Site     string
}

func (f JobCreateForm) ToJob() model.Job {
	return model.Job{
		Number:   strings.TrimSpace(f.Number),
		Customer: strings.TrimSpace(f.Customer),
		Site:     strings.TrimSpace(f.Site),
	}
}

type ReportCreateForm struct {
	JobID     uuid.UUID
	Type      api.ReportType
	Title     string
	Equipment api.Equipment
	// Data is the entered snapshot. Nil starts from the blank form of the type.
	Data *api.ReportData
}

// ToReport builds a draft report carrying the given snapshot.
func (f ReportCreateForm) ToReport(data api.ReportData) model.Report {
	return model.Report{
		Type:      string(f.Type),
		Status:    string(api.ReportStatusDraft),
		Title:     strings.TrimSpace(f.Title),
		Equipment: model.MakeJSONField(f.Equipment),
		Data:      model.MakeJSONField(data),
	}
}

// ReportUpdateForm carries the fields to change. Nil fields are left untouched.
type ReportUpdateForm struct {
	Title     *string
	Status    *api.ReportStatus
	Equipment *api.Equipment
	Data      *api.ReportData
}

func (f ReportUpdateForm) IsEmpty() bool {
	return f.Title == nil && f.Status == nil && f.Equipment == nil && f.Data == nil
}
