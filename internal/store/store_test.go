package store_test

import (
	"context"

	"github.com/google/uuid"
	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/config"
	st "github.com/voltcheck/voltcheck/internal/store"
	"github.com/voltcheck/voltcheck/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		db, err := st.InitDB(cfg)
		Expect(err).To(BeNil())
		gormDB = db

		store = st.NewStore(db)
		Expect(store).ToNot(BeNil())
		Expect(store.InitialMigration(context.TODO())).To(BeNil())
	})

	AfterAll(func() {
		store.Close()
	})

	Context("transaction", func() {
		It("insert a job successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			job, err := store.Job().Create(ctx, model.Job{Number: "J-1001", Customer: "Acme Power"})
			Expect(err).To(BeNil())
			Expect(job).ToNot(BeNil())

			_, cerr := st.Commit(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from jobs;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("rollback a job successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			_, err = store.Job().Create(ctx, model.Job{Number: "J-1002", Customer: "Acme Power"})
			Expect(err).To(BeNil())

			// visible inside the transaction
			jobs, err := store.Job().List(ctx, st.NewJobQueryFilter(), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(1))

			_, rerr := st.Rollback(ctx)
			Expect(rerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from jobs;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("joins a running transaction", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			nested, err := store.NewTransactionContext(ctx)
			Expect(err).To(BeNil())
			Expect(st.FromContext(nested)).To(BeIdenticalTo(st.FromContext(ctx)))

			_, rerr := st.Rollback(ctx)
			Expect(rerr).To(BeNil())
		})

		It("commit outside a transaction is a no-op", func() {
			ctx, err := st.Commit(context.TODO())
			Expect(err).To(BeNil())
			Expect(st.FromContext(ctx)).To(BeNil())
		})

		AfterEach(func() {
			gormDB.Exec("DELETE FROM reports;")
			gormDB.Exec("DELETE FROM jobs;")
		})
	})

	Context("statistics", func() {
		It("counts reports by type, status and turns-ratio outcome", func() {
			job, err := store.Job().Create(context.TODO(), model.Job{Number: "J-2001", Customer: "Grid Co"})
			Expect(err).To(BeNil())

			data := api.ReportData{TurnsRatio: &api.TurnsRatioSection{Rows: []api.TurnsRatioRow{
				{Tap: 1, Phases: []api.PhaseResult{{Result: "PASS"}, {Result: "FAIL"}, {Result: ""}}},
				{Tap: 2, Phases: []api.PhaseResult{{Result: "PASS"}}},
			}}}
			reports := []model.Report{
				{JobID: job.ID, Type: string(api.ReportTypeTransformer), Status: string(api.ReportStatusDraft), Title: "T1", Data: model.MakeJSONField(data), Equipment: model.MakeJSONField(api.Equipment{})},
				{JobID: job.ID, Type: string(api.ReportTypeSwitch), Status: string(api.ReportStatusApproved), Title: "S1", Data: model.MakeJSONField(api.ReportData{}), Equipment: model.MakeJSONField(api.Equipment{})},
				{JobID: job.ID, Type: string(api.ReportTypeSwitch), Status: string(api.ReportStatusDraft), Title: "S2", Data: model.MakeJSONField(api.ReportData{}), Equipment: model.MakeJSONField(api.Equipment{})},
			}
			for _, r := range reports {
				_, err := store.Report().Create(context.TODO(), r)
				Expect(err).To(BeNil())
			}

			stats, err := store.Statistics(context.TODO())
			Expect(err).To(BeNil())
			Expect(stats.TotalJobs).To(Equal(1))
			Expect(stats.TotalReports).To(Equal(3))
			Expect(stats.ByType).To(HaveKeyWithValue("switch", 2))
			Expect(stats.ByType).To(HaveKeyWithValue("transformer", 1))
			Expect(stats.ByStatus).To(HaveKeyWithValue("draft", 2))
			Expect(stats.TurnsRatio).To(Equal(model.TurnsRatioStats{Pass: 2, Fail: 1}))
		})

		It("is empty without data", func() {
			stats, err := store.Statistics(context.TODO())
			Expect(err).To(BeNil())
			Expect(stats.TotalJobs).To(Equal(0))
			Expect(stats.TotalReports).To(Equal(0))
		})

		AfterEach(func() {
			gormDB.Exec("DELETE FROM reports;")
			gormDB.Exec("DELETE FROM jobs;")
		})
	})

	It("returns ErrRecordNotFound for unknown ids", func() {
		_, err := store.Job().Get(context.TODO(), uuid.New())
		Expect(err).To(MatchError(st.ErrRecordNotFound))
		_, err = store.Report().Get(context.TODO(), uuid.New())
		Expect(err).To(MatchError(st.ErrRecordNotFound))
	})
})
