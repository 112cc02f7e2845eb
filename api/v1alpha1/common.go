package v1alpha1

func StringToReportType(s string) (ReportType, bool) {
	switch s {
	case string(ReportTypeCircuitBreaker):
		return ReportTypeCircuitBreaker, true
	case string(ReportTypeSwitch):
		return ReportTypeSwitch, true
	case string(ReportTypeTransformer):
		return ReportTypeTransformer, true
	default:
		return "", false
	}
}

func StringToReportStatus(s string) ReportStatus {
	switch s {
	case string(ReportStatusReady):
		return ReportStatusReady
	case string(ReportStatusApproved):
		return ReportStatusApproved
	case string(ReportStatusDraft):
		return ReportStatusDraft
	default:
		return ReportStatusDraft
	}
}

// ReportTypes lists every supported report type.
func ReportTypes() []ReportType {
	return []ReportType{ReportTypeCircuitBreaker, ReportTypeSwitch, ReportTypeTransformer}
}
