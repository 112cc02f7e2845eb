package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
)

// Report is a persisted test report. The form snapshot is kept as one JSON document:
// entered and derived values are stored side by side exactly as shown on the form.
type Report struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt *time.Time
	JobID     uuid.UUID                  `gorm:"not null;type:VARCHAR(255);index:reports_job_id_idx"`
	Type      string                     `gorm:"not null;type:VARCHAR(50)"`
	Status    string                     `gorm:"not null;type:VARCHAR(50);default:draft"`
	Title     string                     `gorm:"not null;type:VARCHAR(200)"`
	Equipment *JSONField[api.Equipment]  `gorm:"type:jsonb;not null"`
	Data      *JSONField[api.ReportData] `gorm:"type:jsonb;not null"`
}

type ReportList []Report

func (r Report) String() string {
	val, _ := json.Marshal(r)
	return string(val)
}

// ReportData returns the stored snapshot, or an empty one when the column is unset.
func (r Report) ReportData() api.ReportData {
	if r.Data == nil {
		return api.ReportData{}
	}
	return r.Data.Data
}

func (r Report) EquipmentData() api.Equipment {
	if r.Equipment == nil {
		return api.Equipment{}
	}
	return r.Equipment.Data
}
