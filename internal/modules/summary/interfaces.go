package summary

import (
	"context"

	"barbercrm/internal/domain"
	"barbercrm/internal/modules/dashboard"
	"barbercrm/internal/tracking"
)

type SummaryRepositoryInterface interface {
	Append(ctx context.Context, rows []domain.BranchSummary) error
	ListByBranch(ctx context.Context, branchID int64) ([]domain.BranchSummary, error)
}

// DashboardSource provides the month dashboard a report is taken from.
type DashboardSource interface {
	Summary(ctx context.Context, branchID int64, month tracking.Month) (*dashboard.Summary, error)
}
