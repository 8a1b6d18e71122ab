package auth

import (
	"context"
	"time"

	"barbercrm/internal/domain"
)

// BranchRepositoryInterface lists only the methods the auth service uses
type BranchRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Branch) error
	GetByName(ctx context.Context, name string) (*domain.Branch, error)
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	RecordLoginFailure(ctx context.Context, id int64, attempts int, lockedUntil *time.Time) error
	ResetLoginFailures(ctx context.Context, id int64) error
}

type jwtService interface {
	GenerateToken(branchID int64, branchName string) (string, error)
}
