package service_test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/config"
	"github.com/voltcheck/voltcheck/internal/evaluation/calculators"
	"github.com/voltcheck/voltcheck/internal/events"
	"github.com/voltcheck/voltcheck/internal/service"
	"github.com/voltcheck/voltcheck/internal/service/mappers"
	"github.com/voltcheck/voltcheck/internal/store"
)

var _ = Describe("lifecycle events", Ordered, func() {
	var (
		s       store.Store
		writer  *recordingWriter
		jobs    *service.JobService
		reports *service.ReportService
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())
		s = store.NewStore(db)
		Expect(s.InitialMigration(context.TODO())).To(BeNil())

		writer = &recordingWriter{}
		jobs = service.NewJobService(s).WithEventWriter(writer)
		reports = service.NewReportService(s, calculators.NewDefaultEngine(calc.PolicyRounded)).WithEventWriter(writer)
	})

	AfterAll(func() {
		s.Close()
	})

	It("publishes job and report events", func() {
		job, err := jobs.CreateJob(context.TODO(), mappers.JobCreateForm{Number: "EV-1", Customer: "Acme"})
		Expect(err).To(BeNil())

		r, err := reports.CreateReport(context.TODO(), mappers.ReportCreateForm{JobID: job.ID, Type: api.ReportTypeSwitch, Title: "S-1"})
		Expect(err).To(BeNil())

		ready := api.ReportStatusReady
		_, err = reports.UpdateReport(context.TODO(), r.ID, mappers.ReportUpdateForm{Status: &ready})
		Expect(err).To(BeNil())

		// same status, no event
		_, err = reports.UpdateReport(context.TODO(), r.ID, mappers.ReportUpdateForm{Status: &ready})
		Expect(err).To(BeNil())

		Expect(reports.DeleteReport(context.TODO(), r.ID)).To(Succeed())
		Expect(jobs.DeleteJob(context.TODO(), job.ID)).To(Succeed())

		Expect(writer.kinds).To(Equal([]string{
			events.JobMessageKind,
			events.ReportMessageKind,
			events.ReportMessageKind,
			events.ReportMessageKind,
			events.JobMessageKind,
		}))

		Expect(writer.values[0]).To(Equal(events.JobEvent{JobID: job.ID.String(), Number: "EV-1", Action: events.ActionCreated}))
		Expect(writer.values[2]).To(Equal(events.ReportEvent{
			ReportID:       r.ID.String(),
			JobID:          job.ID.String(),
			Type:           string(api.ReportTypeSwitch),
			Action:         events.ActionStatusChanged,
			Status:         string(api.ReportStatusReady),
			PreviousStatus: string(api.ReportStatusDraft),
		}))
		Expect(writer.values[3].(events.ReportEvent).Action).To(Equal(events.ActionDeleted))
		Expect(writer.values[4].(events.JobEvent).Action).To(Equal(events.ActionDeleted))
	})
})

type recordingWriter struct {
	lock   sync.Mutex
	kinds  []string
	values []any
}

func (r *recordingWriter) Write(_ context.Context, kind string, v any) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.kinds = append(r.kinds, kind)
	r.values = append(r.values, v)
	return nil
}
