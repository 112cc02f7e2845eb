package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/voltcheck/voltcheck/internal/calc"
	"github.com/voltcheck/voltcheck/internal/config"
	"github.com/voltcheck/voltcheck/internal/evaluation/calculators"
	"github.com/voltcheck/voltcheck/internal/events"
	handlers "github.com/voltcheck/voltcheck/internal/handlers/v1alpha1"
	"github.com/voltcheck/voltcheck/internal/service"
	"github.com/voltcheck/voltcheck/internal/store"
	"github.com/voltcheck/voltcheck/pkg/metrics"
	"github.com/voltcheck/voltcheck/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	listener net.Listener
}

// New returns a new instance of the voltcheck API server.
func New(
	cfg *config.Config,
	store store.Store,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		listener: listener,
	}
}

func (s *Server) router(metricMiddleware *metrics.Middleware, eventWriter service.EventWriter) http.Handler {
	router := chi.NewRouter()
	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.Service.AllowedOrigins,
			AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{"Content-Disposition", "X-Request-Id"},
			MaxAge:         300,
		}),
		chiMiddleware.RequestID,
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	policy := calc.ParsePolicy(s.cfg.Service.TCFPolicy)
	jobs := service.NewJobService(s.store)
	reports := service.NewReportService(s.store, calculators.NewDefaultEngine(policy))
	if eventWriter != nil {
		jobs = jobs.WithEventWriter(eventWriter)
		reports = reports.WithEventWriter(eventWriter)
	}
	h := handlers.NewServiceHandler(jobs, reports, service.NewCalculationService(policy))
	h.RegisterRoutes(router)

	return router
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	producer := events.NewEventProducer(&events.LogWriter{})
	defer func() {
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()
		_ = producer.Close(ctxTimeout)
	}()

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: s.router(metricMiddleware, producer)}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
