package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/voltcheck/voltcheck/internal/store/model"
	"gorm.io/gorm"
)

type Job interface {
	List(ctx context.Context, filter *JobQueryFilter, opts *QueryOptions) (model.JobList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Create(ctx context.Context, job model.Job) (*model.Job, error)
	Update(ctx context.Context, job model.Job) (*model.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type JobStore struct {
	db *gorm.DB
}

// Make sure we conform to Job interface
var _ Job = (*JobStore)(nil)

func NewJobStore(db *gorm.DB) Job {
	return &JobStore{db: db}
}

func (j *JobStore) List(ctx context.Context, filter *JobQueryFilter, opts *QueryOptions) (model.JobList, error) {
	var jobs model.JobList
	tx := j.getDB(ctx).Model(&jobs)
	tx = filter.apply(tx)
	if opts == nil {
		opts = NewQueryOptions().WithSortOrder(SortByCreatedTime)
	}
	tx = opts.apply(tx)

	if err := tx.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (j *JobStore) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := j.getDB(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &job, nil
}

func (j *JobStore) Create(ctx context.Context, job model.Job) (*model.Job, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if err := j.getDB(ctx).Create(&job).Error; err != nil {
		return nil, translateError(err)
	}
	return &job, nil
}

func (j *JobStore) Update(ctx context.Context, job model.Job) (*model.Job, error) {
	now := time.Now()
	job.UpdatedAt = &now
	result := j.getDB(ctx).Model(&model.Job{ID: job.ID}).
		Select("customer", "site", "updated_at").
		Updates(&job)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return j.Get(ctx, job.ID)
}

// Delete removes the job and its reports. Missing jobs are not an error.
func (j *JobStore) Delete(ctx context.Context, id uuid.UUID) error {
	db := j.getDB(ctx)
	if err := db.Where("job_id = ?", id).Delete(&model.Report{}).Error; err != nil {
		return err
	}
	if err := db.Delete(&model.Job{}, "id = ?", id).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (j *JobStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := j.getDB(ctx).Model(&model.Job{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (j *JobStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return j.db.WithContext(ctx)
}
