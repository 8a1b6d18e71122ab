package summary

import (
	"context"
	"fmt"
	"time"

	"barbercrm/internal/domain"
	"barbercrm/internal/tracking"

	"go.uber.org/zap"
)

// Service freezes a branch's month dashboard into stored report rows.
type Service struct {
	repo      SummaryRepositoryInterface
	dashboard DashboardSource
	log       *zap.Logger
	now       func() time.Time
}

func NewService(repo SummaryRepositoryInterface, dashboard DashboardSource, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, dashboard: dashboard, log: log, now: time.Now}
}

// Create stores one row per metric for the month as a new snapshot. Earlier
// snapshots stay in the history. A degraded dashboard is never stored.
func (s *Service) Create(ctx context.Context, branchID int64, req CreateRequest) ([]domain.BranchSummary, error) {
	month, err := tracking.ParseMonth(req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, req.Month)
	}

	dash, err := s.dashboard.Summary(ctx, branchID, month)
	if err != nil {
		return nil, err
	}
	if dash.Degraded {
		return nil, ErrCountsUnavailable
	}

	createdAt := s.now().UTC().Truncate(time.Microsecond)
	reg := tracking.MustDefaultRegistry()
	rows := make([]domain.BranchSummary, 0, len(dash.Metrics))
	for _, key := range reg.Keys() {
		snap, ok := dash.Metrics[key]
		if !ok {
			continue
		}
		rows = append(rows, domain.BranchSummary{
			BranchID:   branchID,
			Month:      month.Key(),
			Manager:    req.Manager,
			Metric:     key,
			Label:      snap.Label,
			Current:    snap.Current,
			Goal:       snap.Goal,
			Percentage: snap.Percentage,
			CreatedAt:  createdAt,
		})
	}

	if err := s.repo.Append(ctx, rows); err != nil {
		return nil, err
	}

	s.log.Info("branch summary stored",
		zap.Int64("branch_id", branchID),
		zap.String("month", month.Key()),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}

func (s *Service) List(ctx context.Context, branchID int64) ([]domain.BranchSummary, error) {
	return s.repo.ListByBranch(ctx, branchID)
}
