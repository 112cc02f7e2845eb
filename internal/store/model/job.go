package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt *time.Time
	Number    string   `gorm:"not null;uniqueIndex:jobs_number_idx;type:VARCHAR(50)"`
	Customer  string   `gorm:"not null;type:VARCHAR(200)"`
	Site      string   `gorm:"type:VARCHAR(200)"`
	Reports   []Report `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE;"`
}

type JobList []Job

func (j Job) String() string {
	val, _ := json.Marshal(j)
	return string(val)
}
