package records

import (
	"context"

	"barbercrm/internal/domain"
	"barbercrm/internal/submission"
)

// RecordRepositoryInterface lists only the methods the records service uses
type RecordRepositoryInterface interface {
	CreateBatch(ctx context.Context, branchID int64, records []domain.Record) error
	List(ctx context.Context, branchID int64, dest any, limit int) error
}

// Listener is told after a batch has been stored.
type Listener interface {
	RecordsSubmitted(ctx context.Context, branchID int64, branchName string, kind submission.Kind, count int)
}
