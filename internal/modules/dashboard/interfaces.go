package dashboard

import (
	"context"
	"time"

	"barbercrm/internal/domain"
)

// CountReader counts a branch's records per metric in [start, end).
type CountReader interface {
	CountForMonth(ctx context.Context, branchID int64, start, end time.Time) (map[string]int, error)
}

// BranchRepositoryInterface lists only the methods the dashboard uses
type BranchRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
	SetGoalOverrides(ctx context.Context, id int64, overrides map[string]int) error
}
