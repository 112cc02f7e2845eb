package service_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/voltcheck/voltcheck/internal/config"
	"github.com/voltcheck/voltcheck/internal/service"
	"github.com/voltcheck/voltcheck/internal/service/mappers"
	"github.com/voltcheck/voltcheck/internal/store"
)

const (
	insertJobStm    = "INSERT INTO jobs (id, number, customer, site) VALUES ('%s', '%s', '%s', '');"
	insertReportStm = "INSERT INTO reports (id, job_id, type, status, title, equipment, data) VALUES ('%s', '%s', '%s', '%s', '%s', '{}', '{}');"
)

var _ = Describe("job service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		svc    *service.JobService
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())
		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(BeNil())
		svc = service.NewJobService(s)
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM reports;")
		gormdb.Exec("DELETE FROM jobs;")
	})

	Context("create", func() {
		It("successfully creates a job", func() {
			job, err := svc.CreateJob(context.TODO(), mappers.JobCreateForm{Number: " J-100 ", Customer: "Acme Power", Site: "Plant 2"})
			Expect(err).To(BeNil())
			Expect(job.ID).NotTo(Equal(uuid.Nil))
			Expect(job.Number).To(Equal("J-100"))

			count := 0
			tx := gormdb.Raw("SELECT COUNT(*) FROM jobs;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("fails to create a job with a number already used", func() {
			_, err := svc.CreateJob(context.TODO(), mappers.JobCreateForm{Number: "J-100", Customer: "Acme"})
			Expect(err).To(BeNil())

			_, err = svc.CreateJob(context.TODO(), mappers.JobCreateForm{Number: "J-100", Customer: "Other"})
			Expect(err).NotTo(BeNil())
			_, ok := err.(*service.ErrDuplicateResource)
			Expect(ok).To(BeTrue())
		})
	})

	Context("get and list", func() {
		It("successfully lists jobs filtered by customer", func() {
			Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), "J-1", "Acme")).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), "J-2", "Acme")).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), "J-3", "Globex")).Error).To(BeNil())

			jobs, err := svc.ListJobs(context.TODO(), nil)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(3))

			jobs, err = svc.ListJobs(context.TODO(), service.NewJobFilter().WithCustomer("Acme"))
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(2))

			jobs, err = svc.ListJobs(context.TODO(), service.NewJobFilter().WithLimit(1))
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(1))
		})

		It("fails to get a missing job - 404", func() {
			_, err := svc.GetJob(context.TODO(), uuid.New())
			Expect(err).NotTo(BeNil())
			_, ok := err.(*service.ErrResourceNotFound)
			Expect(ok).To(BeTrue())
		})
	})

	Context("delete", func() {
		It("successfully deletes a job and its reports", func() {
			jobID := uuid.New()
			Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, jobID, "J-9", "Acme")).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertReportStm, uuid.NewString(), jobID, "switch", "draft", "SW-1")).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertReportStm, uuid.NewString(), jobID, "switch", "draft", "SW-2")).Error).To(BeNil())

			Expect(svc.DeleteJob(context.TODO(), jobID)).To(BeNil())

			count := 1
			Expect(gormdb.Raw("SELECT COUNT(*) FROM reports;").Scan(&count).Error).To(BeNil())
			Expect(count).To(Equal(0))
			Expect(gormdb.Raw("SELECT COUNT(*) FROM jobs;").Scan(&count).Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("fails to delete a missing job", func() {
			err := svc.DeleteJob(context.TODO(), uuid.New())
			_, ok := err.(*service.ErrResourceNotFound)
			Expect(ok).To(BeTrue())
		})
	})
})
