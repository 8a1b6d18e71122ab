package records

import (
	"context"
	"errors"

	"barbercrm/internal/domain"
	"barbercrm/internal/observability"
	"barbercrm/internal/submission"

	"go.uber.org/zap"
)

// Service validates form batches and stores them for a branch.
type Service struct {
	repo         RecordRepositoryInterface
	historyLimit int
	log          *zap.Logger
	listeners    []Listener
}

func NewService(repo RecordRepositoryInterface, historyLimit int, log *zap.Logger, listeners ...Listener) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:         repo,
		historyLimit: historyLimit,
		log:          log,
		listeners:    listeners,
	}
}

// Submit stores every row of the batch or none of them.
func (s *Service) Submit(ctx context.Context, branchID int64, branchName string, kind submission.Kind, rows []submission.Row) ([]submission.Record, error) {
	prepared, err := submission.PrepareBatch(kind, rows)
	if err != nil {
		var rvf *submission.RowValidationFailed
		if errors.As(err, &rvf) {
			observability.ValidationFailuresTotal.WithLabelValues(string(kind), string(rvf.Kind())).Inc()
		}
		return nil, err
	}

	entities := make([]domain.Record, 0, len(prepared))
	for _, rec := range prepared {
		e, err := toEntity(rec)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}

	if err := s.repo.CreateBatch(ctx, branchID, entities); err != nil {
		return nil, err
	}

	observability.RecordsSubmittedTotal.WithLabelValues(string(kind)).Add(float64(len(entities)))
	s.log.Info("records submitted",
		zap.Int64("branch_id", branchID),
		zap.String("kind", string(kind)),
		zap.Int("count", len(entities)),
	)

	for _, l := range s.listeners {
		l.RecordsSubmitted(ctx, branchID, branchName, kind, len(entities))
	}
	return prepared, nil
}

// History returns the branch's latest stored records of kind, newest first.
func (s *Service) History(ctx context.Context, branchID int64, kind submission.Kind) (any, error) {
	return s.list(ctx, branchID, kind, s.historyLimit)
}

// All returns every stored record of kind, newest first.
func (s *Service) All(ctx context.Context, branchID int64, kind submission.Kind) (any, error) {
	return s.list(ctx, branchID, kind, 0)
}

func (s *Service) list(ctx context.Context, branchID int64, kind submission.Kind, limit int) (any, error) {
	dest, err := newList(kind)
	if err != nil {
		return nil, err
	}
	if err := s.repo.List(ctx, branchID, dest, limit); err != nil {
		return nil, err
	}
	return dest, nil
}
