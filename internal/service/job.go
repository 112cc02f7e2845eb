package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voltcheck/voltcheck/internal/events"
	"github.com/voltcheck/voltcheck/internal/service/mappers"
	"github.com/voltcheck/voltcheck/internal/store"
	"github.com/voltcheck/voltcheck/internal/store/model"
)

type JobService struct {
	store       store.Store
	eventWriter EventWriter
}

func NewJobService(store store.Store) *JobService {
	return &JobService{store: store}
}

// WithEventWriter makes the service publish job lifecycle events.
func (js *JobService) WithEventWriter(w EventWriter) *JobService {
	js.eventWriter = w
	return js
}

type JobFilter struct {
	Number   string
	Customer string
	Limit    int
	Offset   int
}

func NewJobFilter() *JobFilter {
	return &JobFilter{}
}

func (f *JobFilter) WithNumber(number string) *JobFilter {
	f.Number = number
	return f
}

func (f *JobFilter) WithCustomer(customer string) *JobFilter {
	f.Customer = customer
	return f
}

func (f *JobFilter) WithLimit(limit int) *JobFilter {
	f.Limit = limit
	return f
}

func (f *JobFilter) WithOffset(offset int) *JobFilter {
	f.Offset = offset
	return f
}

func (js *JobService) ListJobs(ctx context.Context, filter *JobFilter) (model.JobList, error) {
	if filter == nil {
		filter = NewJobFilter()
	}

	storeFilter := store.NewJobQueryFilter()
	if filter.Number != "" {
		storeFilter = storeFilter.ByNumber(filter.Number)
	}
	if filter.Customer != "" {
		storeFilter = storeFilter.ByCustomer(filter.Customer)
	}
	opts := pageOptions(filter.Limit, filter.Offset)

	jobs, err := js.store.Job().List(ctx, storeFilter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (js *JobService) GetJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := js.store.Job().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(id)
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	return job, nil
}

func (js *JobService) CreateJob(ctx context.Context, form mappers.JobCreateForm) (*model.Job, error) {
	job := form.ToJob()

	created, err := js.store.Job().Create(ctx, job)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrDuplicateJobNumber(job.Number)
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	zap.S().Named("job_service").Infow("job created", "job_id", created.ID, "number", created.Number)
	writeEvent(ctx, js.eventWriter, events.JobMessageKind, jobEvent(events.ActionCreated, created.ID.String(), created.Number))
	return created, nil
}

// DeleteJob removes the job together with every report filed under it.
func (js *JobService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	job, err := js.GetJob(ctx, id)
	if err != nil {
		return err
	}

	ctx, err = js.store.NewTransactionContext(ctx)
	if err != nil {
		return err
	}

	if err := js.store.Job().Delete(ctx, id); err != nil {
		_, _ = store.Rollback(ctx)
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return err
	}

	zap.S().Named("job_service").Infow("job deleted", "job_id", id)
	writeEvent(ctx, js.eventWriter, events.JobMessageKind, jobEvent(events.ActionDeleted, id.String(), job.Number))
	return nil
}

func pageOptions(limit, offset int) *store.QueryOptions {
	opts := store.NewQueryOptions().WithSortOrder(store.SortByCreatedTime)
	if limit > 0 {
		opts = opts.WithLimit(limit)
	}
	if offset > 0 {
		opts = opts.WithOffset(offset)
	}
	return opts
}
