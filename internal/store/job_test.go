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

var _ = Describe("job store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

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

	Context("create", func() {
		It("assigns an id and timestamps", func() {
			job, err := s.Job().Create(context.TODO(), model.Job{Number: "J-100", Customer: "Acme", Site: "North yard"})
			Expect(err).To(BeNil())
			Expect(job.ID).ToNot(Equal(uuid.Nil))
			Expect(job.CreatedAt.IsZero()).To(BeFalse())

			got, err := s.Job().Get(context.TODO(), job.ID)
			Expect(err).To(BeNil())
			Expect(got.Number).To(Equal("J-100"))
			Expect(got.Site).To(Equal("North yard"))
		})

		It("rejects a duplicate number", func() {
			_, err := s.Job().Create(context.TODO(), model.Job{Number: "J-100", Customer: "Acme"})
			Expect(err).To(BeNil())

			_, err = s.Job().Create(context.TODO(), model.Job{Number: "J-100", Customer: "Other"})
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM jobs;")
		})
	})

	Context("list", func() {
		BeforeEach(func() {
			for _, n := range []string{"J-1", "J-2", "J-3"} {
				customer := "Acme"
				if n == "J-3" {
					customer = "Grid Co"
				}
				_, err := s.Job().Create(context.TODO(), model.Job{Number: n, Customer: customer})
				Expect(err).To(BeNil())
			}
		})

		It("lists all jobs", func() {
			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter(), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(3))
		})

		It("filters by customer", func() {
			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByCustomer("Acme"), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(2))
		})

		It("filters by number", func() {
			jobs, err := s.Job().List(context.TODO(), store.NewJobQueryFilter().ByNumber("J-3"), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].Customer).To(Equal("Grid Co"))
		})

		It("limits and offsets", func() {
			jobs, err := s.Job().List(context.TODO(), nil, store.NewQueryOptions().WithSortOrder(store.SortByID).WithLimit(2).WithOffset(1))
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(2))
		})

		It("counts jobs", func() {
			count, err := s.Job().Count(context.TODO())
			Expect(err).To(BeNil())
			Expect(count).To(BeEquivalentTo(3))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM jobs;")
		})
	})

	Context("update", func() {
		It("updates customer and site", func() {
			job, err := s.Job().Create(context.TODO(), model.Job{Number: "J-7", Customer: "Acme"})
			Expect(err).To(BeNil())

			job.Customer = "Acme Utilities"
			job.Site = "Substation 4"
			updated, err := s.Job().Update(context.TODO(), *job)
			Expect(err).To(BeNil())
			Expect(updated.Customer).To(Equal("Acme Utilities"))
			Expect(updated.Site).To(Equal("Substation 4"))
			Expect(updated.UpdatedAt).ToNot(BeNil())
		})

		It("fails for an unknown job", func() {
			_, err := s.Job().Update(context.TODO(), model.Job{ID: uuid.New(), Customer: "x"})
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM jobs;")
		})
	})

	Context("delete", func() {
		It("removes the job and its reports", func() {
			job, err := s.Job().Create(context.TODO(), model.Job{Number: "J-9", Customer: "Acme"})
			Expect(err).To(BeNil())
			_, err = s.Report().Create(context.TODO(), model.Report{
				JobID:     job.ID,
				Type:      string(api.ReportTypeSwitch),
				Status:    string(api.ReportStatusDraft),
				Title:     "Switch 1",
				Equipment: model.MakeJSONField(api.Equipment{}),
				Data:      model.MakeJSONField(api.ReportData{}),
			})
			Expect(err).To(BeNil())

			Expect(s.Job().Delete(context.TODO(), job.ID)).To(BeNil())

			_, err = s.Job().Get(context.TODO(), job.ID)
			Expect(err).To(MatchError(store.ErrRecordNotFound))

			count := 0
			Expect(gormdb.Raw("SELECT COUNT(*) FROM reports;").Scan(&count).Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("ignores unknown ids", func() {
			Expect(s.Job().Delete(context.TODO(), uuid.New())).To(BeNil())
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM reports;")
			gormdb.Exec("DELETE FROM jobs;")
		})
	})
})
