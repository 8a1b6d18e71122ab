package repository

import (
	"context"
	"time"

	"barbercrm/internal/domain"
	"barbercrm/internal/tracking"

	"gorm.io/gorm"
)

// metricTables maps a dashboard metric to the table whose rows it counts.
var metricTables = map[string]string{
	tracking.MetricMorningEvents: domain.MorningEvent{}.TableName(),
	tracking.MetricFieldVisits:   domain.FieldVisit{}.TableName(),
	tracking.MetricOneOnOne:      domain.OneOnOne{}.TableName(),
	tracking.MetricWeeklyReports: domain.WeeklyMetrics{}.TableName(),
	tracking.MetricMasterPlans:   domain.MasterPlan{}.TableName(),
	tracking.MetricReviews:       domain.Review{}.TableName(),
	tracking.MetricNewEmployees:  domain.NewbieAdaptation{}.TableName(),
}

type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// CreateBatch stores all records for the branch in one transaction.
func (r *RecordRepository) CreateBatch(ctx context.Context, branchID int64, records []domain.Record) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			rec.OwnedBy(branchID)
			if err := tx.Create(rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// List loads the newest records of one branch into dest, a pointer to a slice
// of a domain record type. limit <= 0 means no limit.
func (r *RecordRepository) List(ctx context.Context, branchID int64, dest any, limit int) error {
	q := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.Find(dest).Error
}

// CountForMonth counts the branch's records per metric created in [start, end).
func (r *RecordRepository) CountForMonth(ctx context.Context, branchID int64, start, end time.Time) (map[string]int, error) {
	counts := make(map[string]int, len(metricTables))
	for metric, table := range metricTables {
		var n int64
		err := r.db.WithContext(ctx).Table(table).
			Where("branch_id = ? AND created_at >= ? AND created_at < ?", branchID, start, end).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		counts[metric] = int(n)
	}
	return counts, nil
}
