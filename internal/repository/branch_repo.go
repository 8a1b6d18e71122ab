package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"barbercrm/internal/domain"

	"gorm.io/gorm"
)

type BranchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

type branchModel struct {
	ID                  int64          `gorm:"column:id;primaryKey"`
	Name                string         `gorm:"column:name;not null"`
	NameKey             string         `gorm:"column:name_key;uniqueIndex;not null"`
	Address             string         `gorm:"column:address"`
	ManagerName         string         `gorm:"column:manager_name"`
	ManagerPhone        *string        `gorm:"column:manager_phone"`
	PasswordHash        string         `gorm:"column:password_hash;not null"`
	GoalOverrides       map[string]int `gorm:"column:goal_overrides;serializer:json"`
	FailedLoginAttempts int            `gorm:"column:failed_login_attempts;default:0"`
	LockedUntil         *time.Time     `gorm:"column:locked_until"`
	CreatedAt           time.Time      `gorm:"column:created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at"`
}

func (branchModel) TableName() string { return "branches" }

// BranchModel is the migration target for the branches table.
func BranchModel() any { return &branchModel{} }

// nameKey folds a branch name for lookups; SQLite LOWER() only folds ASCII.
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func toDomainBranch(m branchModel) *domain.Branch {
	var phone string
	if m.ManagerPhone != nil {
		phone = *m.ManagerPhone
	}

	return &domain.Branch{
		ID:                  m.ID,
		Name:                m.Name,
		Address:             m.Address,
		ManagerName:         m.ManagerName,
		ManagerPhone:        phone,
		PasswordHash:        m.PasswordHash,
		GoalOverrides:       m.GoalOverrides,
		FailedLoginAttempts: m.FailedLoginAttempts,
		LockedUntil:         m.LockedUntil,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toBranchModel(b *domain.Branch) branchModel {
	var phone *string
	if b.ManagerPhone != "" {
		v := b.ManagerPhone
		phone = &v
	}

	return branchModel{
		ID:                  b.ID,
		Name:                strings.TrimSpace(b.Name),
		NameKey:             nameKey(b.Name),
		Address:             b.Address,
		ManagerName:         b.ManagerName,
		ManagerPhone:        phone,
		PasswordHash:        b.PasswordHash,
		GoalOverrides:       b.GoalOverrides,
		FailedLoginAttempts: b.FailedLoginAttempts,
		LockedUntil:         b.LockedUntil,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (r *BranchRepository) Create(ctx context.Context, b *domain.Branch) error {
	m := toBranchModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return fmt.Errorf("%w: branch %q", ErrDuplicate, m.Name)
		}
		return tx.Error
	}
	*b = *toDomainBranch(m)
	return nil
}

// GetByName matches names case-insensitively, Cyrillic included.
func (r *BranchRepository) GetByName(ctx context.Context, name string) (*domain.Branch, error) {
	var m branchModel
	tx := r.db.WithContext(ctx).
		Where("name_key = ?", nameKey(name)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBranch(m), nil
}

func (r *BranchRepository) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	var m branchModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBranch(m), nil
}

func (r *BranchRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&branchModel{}).
		Where("name_key = ?", nameKey(name)).
		Count(&n).Error
	return n > 0, err
}

// List returns all branches ordered by name.
func (r *BranchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	var rows []branchModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Branch, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBranch(m))
	}
	return out, nil
}

// RecordLoginFailure stores the failure counter and an optional lock.
func (r *BranchRepository) RecordLoginFailure(ctx context.Context, id int64, attempts int, lockedUntil *time.Time) error {
	updates := map[string]any{"failed_login_attempts": attempts}
	if lockedUntil != nil {
		updates["locked_until"] = *lockedUntil
	}
	return r.db.WithContext(ctx).Model(&branchModel{}).Where("id = ?", id).Updates(updates).Error
}

func (r *BranchRepository) ResetLoginFailures(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&branchModel{}).Where("id = ?", id).Updates(map[string]any{
		"failed_login_attempts": 0,
		"locked_until":          nil,
	}).Error
}

// UnlockExpired clears locks that ended before now and returns how many were cleared.
func (r *BranchRepository) UnlockExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&branchModel{}).
		Where("locked_until IS NOT NULL AND locked_until < ?", now).
		Updates(map[string]any{"failed_login_attempts": 0, "locked_until": nil})
	return tx.RowsAffected, tx.Error
}

// SetGoalOverrides replaces the per-branch goal overrides. An empty map clears them.
func (r *BranchRepository) SetGoalOverrides(ctx context.Context, id int64, overrides map[string]int) error {
	m := branchModel{ID: id, GoalOverrides: overrides}
	return r.db.WithContext(ctx).Model(&m).Select("goal_overrides").Updates(&m).Error
}
