package service_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/config"
	"github.com/voltcheck/voltcheck/internal/evaluation/calculators"
	"github.com/voltcheck/voltcheck/internal/service"
	"github.com/voltcheck/voltcheck/internal/service/mappers"
	"github.com/voltcheck/voltcheck/internal/store"
)

var _ = Describe("report service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		svc    *service.ReportService
		jobID  uuid.UUID
	)

	statusPtr := func(s api.ReportStatus) *api.ReportStatus { return &s }

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())
		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(BeNil())
		svc = service.NewReportService(s, calculators.NewDefaultEngine(calc.PolicyRounded))
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		jobID = uuid.New()
		Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, jobID, "J-"+jobID.String()[:8], "Acme")).Error).To(BeNil())
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM reports;")
		gormdb.Exec("DELETE FROM jobs;")
	})

	Context("create", func() {
		It("successfully creates a transformer report with the blank form", func() {
			r, err := svc.CreateReport(context.TODO(), mappers.ReportCreateForm{
				JobID: jobID,
				Type:  api.ReportTypeTransformer,
				Title: "T-1",
			})
			Expect(err).To(BeNil())
			Expect(r.Status).To(Equal(string(api.ReportStatusDraft)))

			data := r.ReportData()
			Expect(data.TurnsRatio).NotTo(BeNil())
			Expect(data.TurnsRatio.Rows).To(HaveLen(7))
			Expect(data.TurnsRatio.Rows[6].Tap).To(Equal(7))
			Expect(data.TurnsRatio.Rows[0].Phases).To(HaveLen(3))
			Expect(data.Absorption).NotTo(BeNil())
			// blank absorption rows are not acceptable
			Expect(data.Absorption.Acceptable).To(Equal(calc.No))
		})

		It("recomputes every derived value of the entered snapshot", func() {
			r, err := svc.CreateReport(context.TODO(), mappers.ReportCreateForm{
				JobID: jobID,
				Type:  api.ReportTypeTransformer,
				Title: "T-2",
				Data: &api.ReportData{
					Temperature: api.TemperatureSection{Fahrenheit: "77", CorrectionFactor: "9.999"},
					Insulation: api.InsulationSection{Rows: []api.InsulationRow{
						{Label: "H-G", Readings: []api.InsulationCell{{Label: "Reading", Measured: "100", Corrected: "1"}}},
					}},
					TurnsRatio: &api.TurnsRatioSection{
						PrimaryConnection:   "Delta",
						SecondaryConnection: "Wye",
						SecondaryVoltage:    "120",
						Rows: []api.TurnsRatioRow{{Tap: 3, TapVoltage: "480", Phases: []api.PhaseResult{
							{Phase: "H1-H2", Measured: "4.030"},
						}}},
					},
				},
			})
			Expect(err).To(BeNil())

			data := r.ReportData()
			Expect(data.Temperature.Celsius).To(Equal("25"))
			Expect(data.Temperature.CorrectionFactor).To(Equal("1.400"))
			Expect(data.Insulation.Rows[0].Readings[0].Corrected).To(Equal("140.00"))
			Expect(data.TurnsRatio.Rows).To(HaveLen(7))
			tap := data.TurnsRatio.Rows[2]
			Expect(tap.CalculatedRatio).To(Equal("4.000"))
			Expect(tap.Phases[0].DeviationPercent).To(Equal("0.750"))
			Expect(tap.Phases[0].Result).To(Equal("FAIL"))
		})

		It("drops sections the equipment type does not carry", func() {
			r, err := svc.CreateReport(context.TODO(), mappers.ReportCreateForm{
				JobID: jobID,
				Type:  api.ReportTypeCircuitBreaker,
				Title: "52-1",
				Data:  &api.ReportData{TurnsRatio: &api.TurnsRatioSection{SecondaryVoltage: "120"}},
			})
			Expect(err).To(BeNil())
			data := r.ReportData()
			Expect(data.TurnsRatio).To(BeNil())
			Expect(data.Absorption).To(BeNil())
			Expect(data.Insulation.Rows).To(HaveLen(3))
		})

		It("fails to create a report for a missing job", func() {
			_, err := svc.CreateReport(context.TODO(), mappers.ReportCreateForm{JobID: uuid.New(), Type: api.ReportTypeSwitch, Title: "SW"})
			_, ok := err.(*service.ErrResourceNotFound)
			Expect(ok).To(BeTrue())
		})

		It("fails to create a report with an unknown type or policy", func() {
			_, err := svc.CreateReport(context.TODO(), mappers.ReportCreateForm{JobID: jobID, Type: "relay", Title: "R"})
			_, ok := err.(*service.ErrInvalidReportData)
			Expect(ok).To(BeTrue())

			_, err = svc.CreateReport(context.TODO(), mappers.ReportCreateForm{
				JobID: jobID,
				Type:  api.ReportTypeSwitch,
				Title: "SW",
				Data:  &api.ReportData{Temperature: api.TemperatureSection{Policy: "nearest"}},
			})
			_, ok = err.(*service.ErrInvalidReportData)
			Expect(ok).To(BeTrue())
		})
	})

	Context("update", func() {
		It("successfully replaces the snapshot and keeps the report policy", func() {
			r, err := svc.CreateReport(context.TODO(), mappers.ReportCreateForm{JobID: jobID, Type: api.ReportTypeSwitch, Title: "SW-1"})
			Expect(err).To(BeNil())

			data := r.ReportData()
			data.Temperature = api.TemperatureSection{Policy: "interpolated", Fahrenheit: "69"}
			data.Absorption.Rows[0].HalfMinute = "10"
			data.Absorption.Rows[0].OneMinute = "15"

			updated, err := svc.UpdateReport(context.TODO(), r.ID, mappers.ReportUpdateForm{Data: &data})
			Expect(err).To(BeNil())
			Expect(updated.UpdatedAt).NotTo(BeNil())

			got := updated.ReportData()
			Expect(got.Temperature.Policy).To(Equal("interpolated"))
			Expect(got.Temperature.Celsius).To(Equal("20.6"))
			Expect(got.Absorption.Rows[0].Ratio).To(Equal("1.50"))
		})

		It("keeps a Celsius edit made after the first save", func() {
			r, err := svc.CreateReport(context.TODO(), mappers.ReportCreateForm{
				JobID: jobID,
				Type:  api.ReportTypeCircuitBreaker,
				Title: "52-2",
				Data:  &api.ReportData{Temperature: api.TemperatureSection{Celsius: "25"}},
			})
			Expect(err).To(BeNil())

			data := r.ReportData()
			Expect(data.Temperature.Entered).To(Equal(api.TemperatureScaleCelsius))
			Expect(data.Temperature.Fahrenheit).To(Equal("77.0"))
			Expect(data.Temperature.CorrectionFactor).To(Equal("1.400"))

			data.Temperature.Celsius = "10"
			updated, err := svc.UpdateReport(context.TODO(), r.ID, mappers.ReportUpdateForm{Data: &data})
			Expect(err).To(BeNil())

			got := updated.ReportData()
			Expect(got.Temperature.Celsius).To(Equal("10"))
			Expect(got.Temperature.Fahrenheit).To(Equal("50.0"))
			Expect(got.Temperature.CorrectionFactor).To(Equal("0.500"))
		})

		It("moves through the review statuses", func() {
			r, err := svc.CreateReport(context.TODO(), mappers.ReportCreateForm{JobID: jobID, Type: api.ReportTypeSwitch, Title: "SW-2"})
			Expect(err).To(BeNil())

			_, err = svc.UpdateReport(context.TODO(), r.ID, mappers.ReportUpdateForm{Status: statusPtr(api.ReportStatusApproved)})
			_, ok := err.(*service.ErrInvalidStatusTransition)
			Expect(ok).To(BeTrue())

			updated, err := svc.UpdateReport(context.TODO(), r.ID, mappers.ReportUpdateForm{Status: statusPtr(api.ReportStatusReady)})
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal("ready"))

			updated, err = svc.UpdateReport(context.TODO(), r.ID, mappers.ReportUpdateForm{Status: statusPtr(api.ReportStatusApproved)})
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal("approved"))

			_, err = svc.UpdateReport(context.TODO(), r.ID, mappers.ReportUpdateForm{Status: statusPtr(api.ReportStatusDraft)})
			_, ok = err.(*service.ErrInvalidStatusTransition)
			Expect(ok).To(BeTrue())

			title := "renamed"
			_, err = svc.UpdateReport(context.TODO(), r.ID, mappers.ReportUpdateForm{Title: &title})
			_, ok = err.(*service.ErrReportLocked)
			Expect(ok).To(BeTrue())
		})

		It("fails to update a missing report - 404", func() {
			title := "x"
			_, err := svc.UpdateReport(context.TODO(), uuid.New(), mappers.ReportUpdateForm{Title: &title})
			_, ok := err.(*service.ErrResourceNotFound)
			Expect(ok).To(BeTrue())
		})
	})

	Context("list and delete", func() {
		It("successfully lists reports filtered by job and type", func() {
			otherJob := uuid.New()
			Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, otherJob, "J-other", "Globex")).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertReportStm, uuid.NewString(), jobID, "switch", "draft", "SW-1")).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertReportStm, uuid.NewString(), jobID, "transformer", "ready", "T-1")).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertReportStm, uuid.NewString(), otherJob, "switch", "draft", "SW-9")).Error).To(BeNil())

			reports, err := svc.ListReports(context.TODO(), service.NewReportFilter().WithJobID(jobID))
			Expect(err).To(BeNil())
			Expect(reports).To(HaveLen(2))

			reports, err = svc.ListReports(context.TODO(), service.NewReportFilter().WithType("switch"))
			Expect(err).To(BeNil())
			Expect(reports).To(HaveLen(2))

			reports, err = svc.ListReports(context.TODO(), service.NewReportFilter().WithStatus("ready"))
			Expect(err).To(BeNil())
			Expect(reports).To(HaveLen(1))
		})

		It("successfully deletes a report", func() {
			id := uuid.New()
			Expect(gormdb.Exec(fmt.Sprintf(insertReportStm, id, jobID, "switch", "draft", "SW-1")).Error).To(BeNil())

			Expect(svc.DeleteReport(context.TODO(), id)).To(BeNil())
			_, err := svc.GetReport(context.TODO(), id)
			_, ok := err.(*service.ErrResourceNotFound)
			Expect(ok).To(BeTrue())
		})
	})

	Context("render", func() {
		It("successfully renders every supported format", func() {
			r, err := svc.CreateReport(context.TODO(), mappers.ReportCreateForm{JobID: jobID, Type: api.ReportTypeTransformer, Title: "T-9"})
			Expect(err).To(BeNil())
			Expect(svc.SupportedFormats()).To(HaveLen(3))

			content, contentType, err := svc.RenderReport(context.TODO(), r.ID, "html")
			Expect(err).To(BeNil())
			Expect(contentType).To(HavePrefix("text/html"))
			Expect(strings.Contains(string(content), "voltcheck-report")).To(BeTrue())

			content, contentType, err = svc.RenderReport(context.TODO(), r.ID, "CSV")
			Expect(err).To(BeNil())
			Expect(contentType).To(HavePrefix("text/csv"))
			Expect(string(content)).To(ContainSubstring("TURNS RATIO"))

			content, _, err = svc.RenderReport(context.TODO(), r.ID, "xlsx")
			Expect(err).To(BeNil())
			// xlsx documents are zip archives
			Expect(content[:2]).To(Equal([]byte("PK")))
		})

		It("fails to render an unknown format", func() {
			_, _, err := svc.RenderReport(context.TODO(), uuid.New(), "pdf")
			_, ok := err.(*service.ErrUnsupportedFormat)
			Expect(ok).To(BeTrue())
		})
	})
})
