package store

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/voltcheck/voltcheck/internal/store/model"
	"gorm.io/gorm"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Job() Job
	Report() Report
	Statistics(ctx context.Context) (model.ReportStats, error)
	InitialMigration(ctx context.Context) error
	Close() error
}

type DataStore struct {
	db     *gorm.DB
	log    logrus.FieldLogger
	job    Job
	report Report
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:     db,
		log:    logrus.StandardLogger().WithField("component", "store"),
		job:    NewJobStore(db),
		report: NewReportStore(db),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db, s.log)
}

func (s *DataStore) Job() Job {
	return s.job
}

func (s *DataStore) Report() Report {
	return s.report
}

// InitialMigration creates the schema from the models. Deployments running the versioned
// SQL migrations do not need it.
func (s *DataStore) InitialMigration(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&model.Job{}, &model.Report{})
}

func (s *DataStore) Statistics(ctx context.Context) (model.ReportStats, error) {
	jobs, err := s.Job().Count(ctx)
	if err != nil {
		return model.ReportStats{}, err
	}
	reports, err := s.Report().List(ctx, NewReportQueryFilter(), nil)
	if err != nil {
		return model.ReportStats{}, err
	}
	return model.NewReportStats(int(jobs), reports), nil
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
