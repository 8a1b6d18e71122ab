package export

import (
	"context"

	"barbercrm/internal/modules/dashboard"
	"barbercrm/internal/submission"
	"barbercrm/internal/tracking"
)

// RecordSource returns a pointer to a slice of stored records of one kind.
type RecordSource interface {
	All(ctx context.Context, branchID int64, kind submission.Kind) (any, error)
}

type DashboardSource interface {
	Summary(ctx context.Context, branchID int64, month tracking.Month) (*dashboard.Summary, error)
	CurrentMonth() tracking.Month
}
