package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// ReportType is the kind of equipment a report covers.
type ReportType string

const (
	ReportTypeCircuitBreaker ReportType = "circuit-breaker"
	ReportTypeSwitch         ReportType = "switch"
	ReportTypeTransformer    ReportType = "transformer"
)

// ReportStatus is the review state of a report.
type ReportStatus string

const (
	ReportStatusDraft    ReportStatus = "draft"
	ReportStatusReady    ReportStatus = "ready"
	ReportStatusApproved ReportStatus = "approved"
)

// Job is a field-testing job (work order) grouping the reports produced on one site visit.
type Job struct {
	Id        uuid.UUID  `json:"id"`
	Number    string     `json:"number"`
	Customer  string     `json:"customer"`
	Site      string     `json:"site,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type JobList []Job

type JobCreate struct {
	Number   string `json:"number" validate:"required,job_number"`
	Customer string `json:"customer" validate:"required,max=200"`
	Site     string `json:"site,omitempty" validate:"max=200"`
}

// Equipment identifies the tested apparatus.
type Equipment struct {
	Identifier   string `json:"identifier,omitempty" validate:"max=100"`
	Manufacturer string `json:"manufacturer,omitempty" validate:"max=100"`
	Model        string `json:"model,omitempty" validate:"max=100"`
	SerialNumber string `json:"serialNumber,omitempty" validate:"max=100"`
	Location     string `json:"location,omitempty" validate:"max=200"`
}

type Report struct {
	Id        uuid.UUID    `json:"id"`
	JobId     uuid.UUID    `json:"jobId"`
	Type      ReportType   `json:"type"`
	Status    ReportStatus `json:"status"`
	Title     string       `json:"title"`
	Equipment Equipment    `json:"equipment"`
	Data      ReportData   `json:"data"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt *time.Time   `json:"updatedAt,omitempty"`
}

type ReportList []Report

type ReportCreate struct {
	JobId     uuid.UUID   `json:"jobId" validate:"required,uuid_set"`
	Type      ReportType  `json:"type" validate:"required,report_type"`
	Title     string      `json:"title" validate:"required,max=200"`
	Equipment Equipment   `json:"equipment"`
	Data      *ReportData `json:"data,omitempty"`
}

type ReportUpdate struct {
	Title     *string       `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Status    *ReportStatus `json:"status,omitempty" validate:"omitempty,report_status"`
	Equipment *Equipment    `json:"equipment,omitempty"`
	Data      *ReportData   `json:"data,omitempty"`
}

// ReportData is the full snapshot of a report form. Every value is kept exactly as typed;
// derived values are recomputed from the entered ones whenever the report is saved.
type ReportData struct {
	Temperature TemperatureSection `json:"temperature"`
	Insulation  InsulationSection  `json:"insulation"`
	Absorption  *AbsorptionSection `json:"absorption,omitempty"`
	TurnsRatio  *TurnsRatioSection `json:"turnsRatio,omitempty"`
	Comments    string             `json:"comments,omitempty"`
}

type TemperatureScale string

const (
	TemperatureScaleFahrenheit TemperatureScale = "F"
	TemperatureScaleCelsius    TemperatureScale = "C"
)

type TemperatureSection struct {
	// Policy is "rounded" or "interpolated". Empty means the service default.
	Policy string `json:"policy,omitempty" validate:"omitempty,policy"`
	// Entered is the scale the technician typed, "F" or "C". The other scale is derived from it.
	// Empty means Fahrenheit when it holds a number, Celsius otherwise.
	Entered          TemperatureScale `json:"entered,omitempty" validate:"omitempty,oneof=F C"`
	Fahrenheit       string           `json:"fahrenheit"`
	Celsius          string           `json:"celsius"`
	CorrectionFactor string           `json:"correctionFactor"`
	Humidity         string           `json:"humidity"`
}

type InsulationSection struct {
	TestVoltage string          `json:"testVoltage,omitempty"`
	Units       string          `json:"units,omitempty"`
	Rows        []InsulationRow `json:"rows"`
}

// InsulationRow is one test configuration (pole to pole, pole to frame, line to load...).
type InsulationRow struct {
	Label    string           `json:"label"`
	Readings []InsulationCell `json:"readings"`
}

type InsulationCell struct {
	Label     string `json:"label"`
	Measured  string `json:"measured"`
	Corrected string `json:"corrected"`
}

type AbsorptionSection struct {
	Rows       []AbsorptionRow `json:"rows"`
	Acceptable string          `json:"acceptable"`
}

type AbsorptionRow struct {
	Label             string `json:"label"`
	HalfMinute        string `json:"halfMinute"`
	OneMinute         string `json:"oneMinute"`
	TenMinute         string `json:"tenMinute,omitempty"`
	Ratio             string `json:"ratio"`
	PolarizationIndex string `json:"polarizationIndex,omitempty"`
}

type TurnsRatioSection struct {
	PrimaryConnection   string          `json:"primaryConnection" validate:"omitempty,connection"`
	SecondaryConnection string          `json:"secondaryConnection" validate:"omitempty,connection"`
	SecondaryVoltage    string          `json:"secondaryVoltage"`
	Rows                []TurnsRatioRow `json:"rows" validate:"max=7,dive"`
}

type TurnsRatioRow struct {
	Tap              int           `json:"tap" validate:"min=1,max=7"`
	TapVoltage       string        `json:"tapVoltage"`
	NameplateVoltage string        `json:"nameplateVoltage"`
	CalculatedRatio  string        `json:"calculatedRatio"`
	Phases           []PhaseResult `json:"phases" validate:"max=3"`
}

type PhaseResult struct {
	Phase            string `json:"phase"`
	Measured         string `json:"measured"`
	DeviationPercent string `json:"deviationPercent"`
	Result           string `json:"result"`
}

type TemperatureRequest struct {
	Fahrenheit *float64 `json:"fahrenheit,omitempty"`
	Celsius    *float64 `json:"celsius,omitempty"`
	Humidity   float64  `json:"humidity,omitempty" validate:"min=0,max=100"`
	Policy     string   `json:"policy,omitempty" validate:"omitempty,policy"`
}

type TemperatureResponse struct {
	Policy           string  `json:"policy"`
	Fahrenheit       float64 `json:"fahrenheit"`
	Celsius          float64 `json:"celsius"`
	CorrectionFactor float64 `json:"correctionFactor"`
	Humidity         float64 `json:"humidity"`
}

type InsulationRequest struct {
	CorrectionFactor float64  `json:"correctionFactor"`
	Readings         []string `json:"readings" validate:"required,min=1,max=500"`
}

type InsulationResponse struct {
	CorrectionFactor float64  `json:"correctionFactor"`
	Corrected        []string `json:"corrected"`
}

type AbsorptionRequest struct {
	Rows []AbsorptionRow `json:"rows" validate:"required,min=1,max=100"`
}

type TurnsRatioRequest struct {
	PrimaryConnection   string          `json:"primaryConnection" validate:"required,connection"`
	SecondaryConnection string          `json:"secondaryConnection" validate:"required,connection"`
	SecondaryVoltage    string          `json:"secondaryVoltage"`
	Rows                []TurnsRatioRow `json:"rows" validate:"required,min=1,max=7,dive"`
}

type Info struct {
	GitCommit   string `json:"gitCommit"`
	VersionName string `json:"versionName"`
}

type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}

type Status struct {
	Message string `json:"message"`
}
