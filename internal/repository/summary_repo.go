package repository

import (
	"context"

	"barbercrm/internal/domain"

	"gorm.io/gorm"
)

type SummaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// Append stores one report snapshot. Earlier reports of the same month are kept.
func (r *SummaryRepository) Append(ctx context.Context, rows []domain.BranchSummary) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// ListByBranch returns the branch reports, newest snapshot first. Rows of one
// snapshot share created_at and keep their stored order.
func (r *SummaryRepository) ListByBranch(ctx context.Context, branchID int64) ([]domain.BranchSummary, error) {
	var rows []domain.BranchSummary
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("created_at DESC").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
