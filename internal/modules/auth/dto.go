package auth

import (
	"time"

	"barbercrm/internal/domain"
)

type RegisterRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Address      string `json:"address" binding:"required"`
	ManagerName  string `json:"manager_name" binding:"required"`
	ManagerPhone string `json:"manager_phone" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// BranchPublic is the branch as shown to its own manager.
type BranchPublic struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	ManagerName   string         `json:"manager_name"`
	ManagerPhone  string         `json:"manager_phone,omitempty"`
	GoalOverrides map[string]int `json:"goal_overrides,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func toPublic(b *domain.Branch) BranchPublic {
	return BranchPublic{
		ID:            b.ID,
		Name:          b.Name,
		Address:       b.Address,
		ManagerName:   b.ManagerName,
		ManagerPhone:  b.ManagerPhone,
		GoalOverrides: b.GoalOverrides,
		CreatedAt:     b.CreatedAt,
	}
}
