package domain

import "time"

// BranchSummary is one metric line of a monthly branch report.
type BranchSummary struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	BranchID   int64     `json:"branch_id" gorm:"index:idx_summary_branch_month;not null"`
	Month      string    `json:"month" gorm:"index:idx_summary_branch_month"`
	Manager    string    `json:"manager"`
	Metric     string    `json:"metric"`
	Label      string    `json:"label"`
	Current    int       `json:"current"`
	Goal       int       `json:"goal"`
	Percentage float64   `json:"percentage"`
	CreatedAt  time.Time `json:"created_at"`
}

func (BranchSummary) TableName() string { return "branch_summaries" }
