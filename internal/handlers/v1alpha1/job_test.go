package v1alpha1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/config"
	"github.com/voltcheck/voltcheck/internal/evaluation/calculators"
	handlers "github.com/voltcheck/voltcheck/internal/handlers/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/service"
	"github.com/voltcheck/voltcheck/internal/store"
	"github.com/voltcheck/voltcheck/pkg/middleware"
	"github.com/voltcheck/voltcheck/pkg/requestid"
)

const (
	insertJobStm    = "INSERT INTO jobs (id, number, customer, site) VALUES ('%s', '%s', '%s', '');"
	insertReportStm = "INSERT INTO reports (id, job_id, type, status, title, equipment, data) VALUES ('%s', '%s', '%s', '%s', '%s', '{}', '{}');"
)

// newRouter wires the handlers the way the API server does.
func newRouter(s store.Store) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	h := handlers.NewServiceHandler(
		service.NewJobService(s),
		service.NewReportService(s, calculators.NewDefaultEngine(calc.PolicyRounded)),
		service.NewCalculationService(calc.PolicyRounded),
	)
	h.RegisterRoutes(router)
	return router
}

func doRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		Expect(err).To(BeNil())
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var _ = Describe("job handler", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		router http.Handler
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())
		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(BeNil())
		router = newRouter(s)
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM reports;")
		gormdb.Exec("DELETE FROM jobs;")
	})

	Context("create", func() {
		It("successfully creates a job - 201", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/jobs", v1alpha1.JobCreate{Number: "J-77", Customer: "Acme"})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var job v1alpha1.Job
			Expect(json.Unmarshal(rec.Body.Bytes(), &job)).To(BeNil())
			Expect(job.Number).To(Equal("J-77"))
			Expect(job.Id).NotTo(Equal(uuid.Nil))
		})

		It("fails to create a job with an invalid number - 400", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/jobs", v1alpha1.JobCreate{Number: "no spaces allowed", Customer: "Acme"})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var apiErr v1alpha1.Error
			Expect(json.Unmarshal(rec.Body.Bytes(), &apiErr)).To(BeNil())
			Expect(apiErr.Message).To(ContainSubstring("Number"))
			Expect(apiErr.RequestId).NotTo(BeNil())
			Expect(*apiErr.RequestId).To(Equal(rec.Header().Get(requestid.Header)))
		})

		It("fails to create a job without a body - 400", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/jobs", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("fails to create a job with a duplicate number - 409", func() {
			Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), "J-77", "Acme")).Error).To(BeNil())
			rec := doRequest(router, http.MethodPost, "/api/v1/jobs", v1alpha1.JobCreate{Number: "J-77", Customer: "Acme"})
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("get and list", func() {
		It("successfully lists the jobs - 200", func() {
			Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), "J-1", "Acme")).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.NewString(), "J-2", "Globex")).Error).To(BeNil())

			rec := doRequest(router, http.MethodGet, "/api/v1/jobs", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var jobs v1alpha1.JobList
			Expect(json.Unmarshal(rec.Body.Bytes(), &jobs)).To(BeNil())
			Expect(jobs).To(HaveLen(2))

			rec = doRequest(router, http.MethodGet, "/api/v1/jobs?customer=Globex", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(json.Unmarshal(rec.Body.Bytes(), &jobs)).To(BeNil())
			Expect(jobs).To(HaveLen(1))
		})

		It("fails with an invalid limit - 400", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/jobs?limit=-1", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("successfully gets a job - 200", func() {
			id := uuid.New()
			Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, id, "J-3", "Acme")).Error).To(BeNil())

			rec := doRequest(router, http.MethodGet, "/api/v1/jobs/"+id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("fails to get a missing job - 404", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/jobs/"+uuid.NewString(), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("fails with a malformed id - 400", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/jobs/not-an-id", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("delete", func() {
		It("successfully deletes a job with its reports - 200", func() {
			id := uuid.New()
			Expect(gormdb.Exec(fmt.Sprintf(insertJobStm, id, "J-4", "Acme")).Error).To(BeNil())
			Expect(gormdb.Exec(fmt.Sprintf(insertReportStm, uuid.NewString(), id, "switch", "draft", "SW-1")).Error).To(BeNil())

			rec := doRequest(router, http.MethodDelete, "/api/v1/jobs/"+id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			count := 1
			Expect(gormdb.Raw("SELECT COUNT(*) FROM reports;").Scan(&count).Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("fails to delete a missing job - 404", func() {
			rec := doRequest(router, http.MethodDelete, "/api/v1/jobs/"+uuid.NewString(), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
