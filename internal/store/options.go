package store

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SortOrder int

const (
	SortByCreatedTime SortOrder = iota
	SortByUpdatedTime
	SortByID
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

type JobQueryFilter BaseQuerier

func NewJobQueryFilter() *JobQueryFilter {
	return &JobQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *JobQueryFilter) ByNumber(number string) *JobQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("number = ?", number)
	})
	return f
}

func (f *JobQueryFilter) ByCustomer(customer string) *JobQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("customer = ?", customer)
	})
	return f
}

type ReportQueryFilter BaseQuerier

func NewReportQueryFilter() *ReportQueryFilter {
	return &ReportQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *ReportQueryFilter) ByJobID(jobID uuid.UUID) *ReportQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("job_id = ?", jobID)
	})
	return f
}

func (f *ReportQueryFilter) ByType(reportType string) *ReportQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("type = ?", reportType)
	})
	return f
}

func (f *ReportQueryFilter) ByStatus(status string) *ReportQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status = ?", status)
	})
	return f
}

// Case-insensitive match on the title. LOWER/LIKE works on both SQLite and PostgreSQL.
func (f *ReportQueryFilter) ByTitleLike(pattern string) *ReportQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(pattern)+"%")
	})
	return f
}

type QueryOptions BaseQuerier

func NewQueryOptions() *QueryOptions {
	return &QueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *QueryOptions) WithLimit(limit int) *QueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}

func (o *QueryOptions) WithOffset(offset int) *QueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(offset)
	})
	return o
}

func (o *QueryOptions) WithSortOrder(sort SortOrder) *QueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		switch sort {
		case SortByID:
			return tx.Order("id")
		case SortByUpdatedTime:
			return tx.Order("updated_at DESC")
		default:
			return tx.Order("created_at DESC")
		}
	})
	return o
}

func (f *JobQueryFilter) apply(tx *gorm.DB) *gorm.DB {
	if f == nil {
		return tx
	}
	return applyQueryFn(tx, f.QueryFn)
}

func (f *ReportQueryFilter) apply(tx *gorm.DB) *gorm.DB {
	if f == nil {
		return tx
	}
	return applyQueryFn(tx, f.QueryFn)
}

func (o *QueryOptions) apply(tx *gorm.DB) *gorm.DB {
	if o == nil {
		return tx
	}
	return applyQueryFn(tx, o.QueryFn)
}

func applyQueryFn(tx *gorm.DB, fns []func(*gorm.DB) *gorm.DB) *gorm.DB {
	for _, fn := range fns {
		tx = fn(tx)
	}
	return tx
}
