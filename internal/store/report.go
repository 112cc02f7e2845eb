package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/voltcheck/voltcheck/internal/store/model"
	"gorm.io/gorm"
)

type Report interface {
	List(ctx context.Context, filter *ReportQueryFilter, opts *QueryOptions) (model.ReportList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Report, error)
	Create(ctx context.Context, report model.Report) (*model.Report, error)
	Update(ctx context.Context, report model.Report) (*model.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReportStore struct {
	db *gorm.DB
}

// Make sure we conform to Report interface
var _ Report = (*ReportStore)(nil)

func NewReportStore(db *gorm.DB) Report {
	return &ReportStore{db: db}
}

func (r *ReportStore) List(ctx context.Context, filter *ReportQueryFilter, opts *QueryOptions) (model.ReportList, error) {
	var reports model.ReportList
	tx := r.getDB(ctx).Model(&reports)
	tx = filter.apply(tx)
	if opts == nil {
		opts = NewQueryOptions().WithSortOrder(SortByCreatedTime)
	}
	tx = opts.apply(tx)

	if err := tx.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportStore) Get(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	if err := r.getDB(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &report, nil
}

func (r *ReportStore) Create(ctx context.Context, report model.Report) (*model.Report, error) {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if err := r.getDB(ctx).Create(&report).Error; err != nil {
		return nil, translateError(err)
	}
	return &report, nil
}

// Update overwrites the mutable columns of a report. The last write wins.
func (r *ReportStore) Update(ctx context.Context, report model.Report) (*model.Report, error) {
	now := time.Now()
	report.UpdatedAt = &now
	result := r.getDB(ctx).Model(&model.Report{ID: report.ID}).
		Select("title", "status", "equipment", "data", "updated_at").
		Updates(&report)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return r.Get(ctx, report.ID)
}

// Delete removes the report. Missing reports are not an error.
func (r *ReportStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.getDB(ctx).Delete(&model.Report{}, "id = ?", id).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *ReportStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}
