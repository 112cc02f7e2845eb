package mappers

import (
	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/service/mappers"
)

func JobFormApi(resource v1alpha1.JobCreate) mappers.JobCreateForm {
	return mappers.JobCreateForm{
		Number:   resource.Number,
		Customer: resource.Customer,
		Site:     resource.Site,
	}
}

func ReportFormApi(resource v1alpha1.ReportCreate) mappers.ReportCreateForm {
	return mappers.ReportCreateForm{
		JobID:     resource.JobId,
		Type:      resource.Type,
		Title:     resource.Title,
		Equipment: resource.Equipment,
		Data:      resource.Data,
	}
}

func ReportUpdateFormApi(resource v1alpha1.ReportUpdate) mappers.ReportUpdateForm {
	return mappers.ReportUpdateForm{
		Title:     resource.Title,
		Status:    resource.Status,
		Equipment: resource.Equipment,
		Data:      resource.Data,
	}
}
