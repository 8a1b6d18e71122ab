package domain

import "time"

// Branch is one barbershop of the chain. It is also the login identity:
// every record belongs to exactly one branch.
type Branch struct {
	ID                  int64          `json:"id"`
	Name                string         `json:"name"`
	Address             string         `json:"address"`
	ManagerName         string         `json:"manager_name"`
	ManagerPhone        string         `json:"manager_phone"`
	PasswordHash        string         `json:"-"`
	GoalOverrides       map[string]int `json:"goal_overrides,omitempty"`
	FailedLoginAttempts int            `json:"-"`
	LockedUntil         *time.Time     `json:"-"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}
