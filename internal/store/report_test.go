package store_test

import (
	"context"

	"github.com/google/uuid"
	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/config"
	"github.com/voltcheck/voltcheck/internal/store"
	"github.com/voltcheck/voltcheck/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("report store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		job    *model.Job
	)

	newReport := func(reportType api.ReportType, status api.ReportStatus, title string) model.Report {
		return model.Report{
			JobID:     job.ID,
			Type:      string(reportType),
			Status:    string(status),
			Title:     title,
			Equipment: model.MakeJSONField(api.Equipment{Identifier: "EQ-" + title}),
			Data: model.MakeJSONField(api.ReportData{
				Temperature: api.TemperatureSection{Fahrenheit: "68", Celsius: "20", CorrectionFactor: "1.000"},
			}),
		}
	}

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())
		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		var err error
		job, err = s.Job().Create(context.TODO(), model.Job{Number: "J-500", Customer: "Acme"})
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM reports;")
		gormdb.Exec("DELETE FROM jobs;")
	})

	It("round trips the form snapshot", func() {
		created, err := s.Report().Create(context.TODO(), newReport(api.ReportTypeCircuitBreaker, api.ReportStatusDraft, "Breaker 52-1"))
		Expect(err).To(BeNil())

		got, err := s.Report().Get(context.TODO(), created.ID)
		Expect(err).To(BeNil())
		Expect(got.Title).To(Equal("Breaker 52-1"))
		Expect(got.JobID).To(Equal(job.ID))
		Expect(got.EquipmentData().Identifier).To(Equal("EQ-Breaker 52-1"))
		Expect(got.ReportData().Temperature.CorrectionFactor).To(Equal("1.000"))
	})

	It("filters by job, type, status and title", func() {
		other, err := s.Job().Create(context.TODO(), model.Job{Number: "J-501", Customer: "Acme"})
		Expect(err).To(BeNil())

		for _, r := range []model.Report{
			newReport(api.ReportTypeSwitch, api.ReportStatusDraft, "Main Switch"),
			newReport(api.ReportTypeSwitch, api.ReportStatusReady, "Tie Switch"),
			newReport(api.ReportTypeTransformer, api.ReportStatusDraft, "XFMR T1"),
		} {
			_, err := s.Report().Create(context.TODO(), r)
			Expect(err).To(BeNil())
		}
		elsewhere := newReport(api.ReportTypeSwitch, api.ReportStatusDraft, "Remote Switch")
		elsewhere.JobID = other.ID
		_, err = s.Report().Create(context.TODO(), elsewhere)
		Expect(err).To(BeNil())

		reports, err := s.Report().List(context.TODO(), store.NewReportQueryFilter().ByJobID(job.ID), nil)
		Expect(err).To(BeNil())
		Expect(reports).To(HaveLen(3))

		reports, err = s.Report().List(context.TODO(), store.NewReportQueryFilter().ByJobID(job.ID).ByType("switch"), nil)
		Expect(err).To(BeNil())
		Expect(reports).To(HaveLen(2))

		reports, err = s.Report().List(context.TODO(), store.NewReportQueryFilter().ByStatus("ready"), nil)
		Expect(err).To(BeNil())
		Expect(reports).To(HaveLen(1))
		Expect(reports[0].Title).To(Equal("Tie Switch"))

		reports, err = s.Report().List(context.TODO(), store.NewReportQueryFilter().ByTitleLike("switch"), nil)
		Expect(err).To(BeNil())
		Expect(reports).To(HaveLen(3))
	})

	It("updates the mutable columns", func() {
		created, err := s.Report().Create(context.TODO(), newReport(api.ReportTypeSwitch, api.ReportStatusDraft, "Switch"))
		Expect(err).To(BeNil())

		data := created.ReportData()
		data.Comments = "retested after cleaning"
		created.Data = model.MakeJSONField(data)
		created.Status = string(api.ReportStatusReady)
		created.Title = "Switch A"

		updated, err := s.Report().Update(context.TODO(), *created)
		Expect(err).To(BeNil())
		Expect(updated.Title).To(Equal("Switch A"))
		Expect(updated.Status).To(Equal("ready"))
		Expect(updated.ReportData().Comments).To(Equal("retested after cleaning"))
		Expect(updated.UpdatedAt).ToNot(BeNil())
	})

	It("fails to update an unknown report", func() {
		r := newReport(api.ReportTypeSwitch, api.ReportStatusDraft, "ghost")
		r.ID = uuid.New()
		_, err := s.Report().Update(context.TODO(), r)
		Expect(err).To(MatchError(store.ErrRecordNotFound))
	})

	It("deletes a report", func() {
		created, err := s.Report().Create(context.TODO(), newReport(api.ReportTypeSwitch, api.ReportStatusDraft, "Switch"))
		Expect(err).To(BeNil())

		Expect(s.Report().Delete(context.TODO(), created.ID)).To(BeNil())
		_, err = s.Report().Get(context.TODO(), created.ID)
		Expect(err).To(MatchError(store.ErrRecordNotFound))

		Expect(s.Report().Delete(context.TODO(), created.ID)).To(BeNil())
	})
})
