package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/client"
	"github.com/voltcheck/voltcheck/pkg/requestid"
)

var _ = Describe("voltcheck client", func() {
	var (
		ctx    context.Context
		server *httptest.Server
	)

	BeforeEach(func() {
		ctx = context.Background()
	})

	AfterEach(func() {
		if server != nil {
			server.Close()
			server = nil
		}
	})

	Describe("jobs", func() {
		It("lists the jobs", func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodGet))
				Expect(r.URL.Path).To(Equal("/api/v1/jobs"))
				Expect(r.Header.Get(requestid.Header)).NotTo(BeEmpty())

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(api.JobList{{Id: uuid.New(), Number: "J-1", Customer: "Acme"}})
			}))

			jobs, err := client.New(server.URL, nil).ListJobs(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].Number).To(Equal("J-1"))
		})

		It("sends the create form as JSON", func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPost))
				Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))

				var form api.JobCreate
				Expect(json.NewDecoder(r.Body).Decode(&form)).To(Succeed())
				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(api.Job{Id: uuid.New(), Number: form.Number, Customer: form.Customer})
			}))

			job, err := client.New(server.URL, nil).CreateJob(ctx, api.JobCreate{Number: "J-2", Customer: "Globex"})
			Expect(err).NotTo(HaveOccurred())
			Expect(job.Customer).To(Equal("Globex"))
		})

		It("returns the server error with its request id", func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reqID := "req-1"
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(api.Error{Message: "job not found", RequestId: &reqID})
			}))

			_, err := client.New(server.URL, nil).GetJob(ctx, uuid.New())
			Expect(err).To(HaveOccurred())

			var apiErr *client.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.StatusCode).To(Equal(http.StatusNotFound))
			Expect(apiErr.Message).To(Equal("job not found"))
			Expect(apiErr.RequestID).To(Equal("req-1"))
		})
	})

	Describe("reports", func() {
		It("filters the reports by job", func() {
			jobID := uuid.New()
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Query().Get("jobId")).To(Equal(jobID.String()))
				_ = json.NewEncoder(w).Encode(api.ReportList{})
			}))

			reports, err := client.New(server.URL, nil).ListReports(ctx, &jobID)
			Expect(err).NotTo(HaveOccurred())
			Expect(reports).To(BeEmpty())
		})

		It("downloads the rendered report", func() {
			id := uuid.New()
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1/reports/" + id.String() + "/render"))
				Expect(r.URL.Query().Get("format")).To(Equal("csv"))
				w.Header().Set("Content-Type", "text/csv; charset=utf-8")
				_, _ = w.Write([]byte("SWITCH TEST REPORT\n"))
			}))

			content, err := client.New(server.URL, nil).RenderReport(ctx, id, "csv")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("SWITCH TEST REPORT\n"))
		})
	})

	Describe("config", func() {
		It("writes and reads back the config file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "nested", "client.yaml")
			Expect(client.WriteConfig(path, "http://voltcheck.example.com:3443")).To(Succeed())

			cfg, err := client.ParseConfigFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Service.Server).To(Equal("http://voltcheck.example.com:3443"))

			c, err := client.NewFromConfig(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(c).NotTo(BeNil())
		})

		It("rejects a server without a hostname", func() {
			Expect(client.WriteConfig(filepath.Join(GinkgoT().TempDir(), "client.yaml"), "not-a-url")).NotTo(Succeed())

			_, err := client.NewFromConfig(&client.Config{})
			Expect(err).To(MatchError(ContainSubstring("no server found")))
		})
	})
})
