package mappers

import (
	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/store/model"
)

func JobToApi(j model.Job) api.Job {
	return api.Job{
		Id:        j.ID,
		Number:    j.Number,
		Customer:  j.Customer,
		Site:      j.Site,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

func JobListToApi(jobs model.JobList) api.JobList {
	jobList := api.JobList{}
	for _, j := range jobs {
		jobList = append(jobList, JobToApi(j))
	}
	return jobList
}

func ReportToApi(r model.Report) api.Report {
	return api.Report{
		Id:        r.ID,
		JobId:     r.JobID,
		Type:      api.ReportType(r.Type),
		Status:    api.StringToReportStatus(r.Status),
		Title:     r.Title,
		Equipment: r.EquipmentData(),
		Data:      r.ReportData(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ReportListToApi(reports model.ReportList) api.ReportList {
	reportList := api.ReportList{}
	for _, r := range reports {
		reportList = append(reportList, ReportToApi(r))
	}
	return reportList
}
