package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"barbercrm/internal/cache"
	"barbercrm/internal/observability"
	"barbercrm/internal/submission"
	"barbercrm/internal/tracking"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BreakerSettings configures the circuit breaker around the count source.
type BreakerSettings struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

// Service builds branch dashboards from month counts and goal overrides.
type Service struct {
	counts   CountReader
	branches BranchRepositoryInterface
	goals    *tracking.Registry
	cache    cache.Cache
	cacheTTL time.Duration
	breaker  *gobreaker.CircuitBreaker
	hub      *Hub
	log      *zap.Logger
	now      func() time.Time
}

func NewService(
	counts CountReader,
	branches BranchRepositoryInterface,
	goals *tracking.Registry,
	c cache.Cache,
	cacheTTL time.Duration,
	bs BreakerSettings,
	hub *Hub,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if goals == nil {
		goals = tracking.MustDefaultRegistry()
	}
	if bs.MaxFailures == 0 {
		bs.MaxFailures = 3
	}
	if bs.OpenTimeout <= 0 {
		bs.OpenTimeout = 30 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "dashboard-counts",
		MaxRequests: 1,
		Timeout:     bs.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= bs.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Service{
		counts:   counts,
		branches: branches,
		goals:    goals,
		cache:    c,
		cacheTTL: cacheTTL,
		breaker:  breaker,
		hub:      hub,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CurrentMonth is the UTC month of the service clock.
func (s *Service) CurrentMonth() tracking.Month {
	return tracking.MonthOf(s.now())
}

// Registry returns the effective goals of a branch: the configured table with
// the branch's own overrides on top.
func (s *Service) Registry(ctx context.Context, branchID int64) (*tracking.Registry, error) {
	branch, err := s.branches.GetByID(ctx, branchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	reg, err := s.goals.WithOverrides(branch.GoalOverrides)
	if err != nil {
		s.log.Warn("ignoring invalid stored goal overrides",
			zap.Int64("branch_id", branchID),
			zap.Error(err),
		)
		return s.goals, nil
	}
	return reg, nil
}

// Summary never fails because of the count source. When counts cannot be read
// every metric shows zero and Degraded is set.
func (s *Service) Summary(ctx context.Context, branchID int64, month tracking.Month) (*Summary, error) {
	reg, err := s.Registry(ctx, branchID)
	if err != nil {
		if errors.Is(err, ErrBranchNotFound) {
			return nil, err
		}
		s.log.Warn("branch goals unavailable, using configured goals",
			zap.Int64("branch_id", branchID),
			zap.Error(err),
		)
		reg = s.goals
	}

	out := &Summary{
		Month:       month.Key(),
		MonthLabel:  month.Label(),
		GeneratedAt: s.now(),
	}

	counts, err := s.Counts(ctx, branchID, month)
	if err != nil {
		observability.DashboardDegradedTotal.Inc()
		s.log.Warn("dashboard degraded to zero counts",
			zap.Int64("branch_id", branchID),
			zap.String("month", month.Key()),
			zap.Error(err),
		)
		out.Metrics = tracking.EmptyDashboard(reg)
		out.Degraded = true
		return out, nil
	}

	out.Metrics = tracking.BuildDashboard(reg, counts)
	return out, nil
}

// Counts returns per-metric record counts of the month, cached per branch and month.
func (s *Service) Counts(ctx context.Context, branchID int64, month tracking.Month) (map[string]int, error) {
	key := countsKey(branchID, month)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil {
			var counts map[string]int
			if err := json.Unmarshal([]byte(raw), &counts); err == nil {
				observability.DashboardCacheTotal.WithLabelValues("hit").Inc()
				return counts, nil
			}
		} else if !errors.Is(err, cache.ErrMiss) {
			s.log.Debug("dashboard cache read failed", zap.Error(err))
		}
		observability.DashboardCacheTotal.WithLabelValues("miss").Inc()
	}

	start, end := month.Range()
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.counts.CountForMonth(ctx, branchID, start, end)
	})
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	counts := res.(map[string]int)

	if s.cache != nil {
		if raw, err := json.Marshal(counts); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
				s.log.Debug("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return counts, nil
}

// Goals reports the effective goal table of a branch.
func (s *Service) Goals(ctx context.Context, branchID int64) (*GoalsView, error) {
	branch, err := s.branches.GetByID(ctx, branchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	reg, err := s.goals.WithOverrides(branch.GoalOverrides)
	if err != nil {
		reg = s.goals
	}
	return newGoalsView(s.goals, reg, branch.GoalOverrides), nil
}

// UpdateGoals replaces the branch's overrides. Every key must be a known metric
// and every target positive; nothing is stored otherwise.
func (s *Service) UpdateGoals(ctx context.Context, branchID int64, overrides map[string]int) (*GoalsView, error) {
	reg, err := s.goals.WithOverrides(overrides)
	if err != nil {
		return nil, err
	}
	if overrides == nil {
		overrides = map[string]int{}
	}
	if err := s.branches.SetGoalOverrides(ctx, branchID, overrides); err != nil {
		return nil, err
	}
	s.log.Info("goal overrides updated",
		zap.Int64("branch_id", branchID),
		zap.String("overrides", tracking.FormatOverrides(overrides)),
	)
	s.push(ctx, branchID, LiveEvent{Type: "goals_updated"})
	return newGoalsView(s.goals, reg, overrides), nil
}

// RecordsSubmitted drops the cached counts of the current month and pushes a
// fresh dashboard to the branch's live connections.
func (s *Service) RecordsSubmitted(ctx context.Context, branchID int64, branchName string, kind submission.Kind, count int) {
	if s.cache != nil {
		if err := s.cache.Delete(ctx, countsKey(branchID, s.CurrentMonth())); err != nil {
			s.log.Warn("dashboard cache invalidation failed",
				zap.Int64("branch_id", branchID),
				zap.Error(err),
			)
		}
	}
	// the submitting request must not wait on slow dashboard tabs
	go s.push(context.WithoutCancel(ctx), branchID, LiveEvent{Type: "records_submitted", Kind: string(kind), Count: count})
}

func (s *Service) push(ctx context.Context, branchID int64, ev LiveEvent) {
	if s.hub == nil || !s.hub.IsOnline(branchID) {
		return
	}
	summary, err := s.Summary(ctx, branchID, s.CurrentMonth())
	if err != nil {
		s.log.Warn("live dashboard not pushed", zap.Int64("branch_id", branchID), zap.Error(err))
		return
	}
	ev.Summary = summary
	s.hub.SendToBranch(branchID, ev)
}

func countsKey(branchID int64, month tracking.Month) string {
	return fmt.Sprintf("dashboard-counts:%d:%s", branchID, month.Key())
}

func newGoalsView(base, effective *tracking.Registry, overrides map[string]int) *GoalsView {
	labels := make(map[string]string)
	for _, k := range effective.Keys() {
		labels[k] = tracking.Label(k)
	}
	if overrides == nil {
		overrides = map[string]int{}
	}
	return &GoalsView{
		Goals:     effective.Goals(),
		Defaults:  base.Goals(),
		Overrides: overrides,
		Labels:    labels,
	}
}
