package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"barbercrm/internal/domain"
	"barbercrm/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute
)

// Service contains branch registration and login
type Service struct {
	branches BranchRepositoryInterface
	jwt      jwtService
	now      func() time.Time
}

type LoginResult struct {
	Branch      *domain.Branch
	AccessToken string
}

func NewService(branches BranchRepositoryInterface, jwt jwtService) *Service {
	return &Service{
		branches: branches,
		jwt:      jwt,
		now:      time.Now,
	}
}

// Register creates a branch and signs it in.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Branch, string, error) {
	name := strings.TrimSpace(req.Name)
	exists, err := s.branches.ExistsByName(ctx, name)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrBranchExists
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	branch := &domain.Branch{
		Name:         name,
		Address:      strings.TrimSpace(req.Address),
		ManagerName:  strings.TrimSpace(req.ManagerName),
		ManagerPhone: strings.TrimSpace(req.ManagerPhone),
		PasswordHash: hashedPassword,
	}
	if err := s.branches.Create(ctx, branch); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrBranchExists
		}
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(branch.ID, branch.Name)
	if err != nil {
		return nil, "", err
	}

	branch.PasswordHash = ""
	return branch, token, nil
}

// Login checks the branch password. Five wrong passwords in a row lock the
// branch for fifteen minutes.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	branch, err := s.branches.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	now := s.now()
	if branch.LockedUntil != nil && branch.LockedUntil.After(now) {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(branch.PasswordHash), []byte(req.Password)); err != nil {
		failedAttempts := branch.FailedLoginAttempts + 1
		var lockedUntil *time.Time
		if failedAttempts >= maxFailedLoginAttempts {
			until := now.Add(lockoutDuration)
			lockedUntil = &until
		}
		if updateErr := s.branches.RecordLoginFailure(ctx, branch.ID, failedAttempts, lockedUntil); updateErr != nil {
			return nil, updateErr
		}
		if lockedUntil != nil {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	if branch.FailedLoginAttempts > 0 || branch.LockedUntil != nil {
		if err := s.branches.ResetLoginFailures(ctx, branch.ID); err != nil {
			return nil, err
		}
	}

	token, err := s.jwt.GenerateToken(branch.ID, branch.Name)
	if err != nil {
		return nil, err
	}

	branch.PasswordHash = ""
	return &LoginResult{Branch: branch, AccessToken: token}, nil
}

func (s *Service) GetCurrentBranch(ctx context.Context, branchID int64) (*domain.Branch, error) {
	branch, err := s.branches.GetByID(ctx, branchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	branch.PasswordHash = ""
	return branch, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
