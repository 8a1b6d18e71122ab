package dashboard

import (
	"time"

	"barbercrm/internal/tracking"
)

// Summary is the dashboard of one branch month. Degraded means the counts could
// not be read and every metric shows zero.
type Summary struct {
	Month       string             `json:"month"`
	MonthLabel  string             `json:"month_label"`
	Metrics     tracking.Dashboard `json:"metrics"`
	Degraded    bool               `json:"degraded"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// GoalsView lists effective goals and the branch's own overrides.
type GoalsView struct {
	Goals     map[string]int    `json:"goals"`
	Defaults  map[string]int    `json:"defaults"`
	Overrides map[string]int    `json:"overrides"`
	Labels    map[string]string `json:"labels"`
}

type UpdateGoalsRequest struct {
	Overrides map[string]int `json:"overrides"`
}

// LiveEvent is pushed to websocket subscribers of a branch.
type LiveEvent struct {
	Type    string   `json:"type"`
	Kind    string   `json:"kind,omitempty"`
	Count   int      `json:"count,omitempty"`
	Summary *Summary `json:"summary"`
}
