package events

const (
	JobMessageKind    string = "voltcheck.events.job"
	ReportMessageKind string = "voltcheck.events.report"
)

// Actions carried by job and report events.
const (
	ActionCreated       = "created"
	ActionDeleted       = "deleted"
	ActionStatusChanged = "status_changed"
)

type JobEvent struct {
	JobID  string `json:"job_id"`
	Number string `json:"number"`
	Action string `json:"action"`
}

type ReportEvent struct {
	ReportID       string `json:"report_id"`
	JobID          string `json:"job_id"`
	Type           string `json:"type"`
	Action         string `json:"action"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status,omitempty"`
}
