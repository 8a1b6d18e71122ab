package tracking

// MetricSnapshot is the dashboard view of one metric. It is derived on every read.
type MetricSnapshot struct {
	Current    int     `json:"current"`
	Goal       int     `json:"goal"`
	Percentage float64 `json:"percentage"`
	Status     Status  `json:"status"`
	Label      string  `json:"label"`
}

// Dashboard holds one snapshot per registry metric.
type Dashboard map[string]MetricSnapshot

// BuildDashboard combines per-metric counts with the registry goals. Every
// registry key is present in the result; a missing or negative count is shown as 0.
// Counts for keys outside the registry are ignored.
func BuildDashboard(reg *Registry, counts map[string]int) Dashboard {
	out := make(Dashboard, len(reg.goals))
	for _, key := range reg.Keys() {
		goal, err := reg.GoalFor(key)
		if err != nil {
			continue
		}
		current := counts[key]
		if current < 0 {
			current = 0
		}
		pct := PerformancePct(float64(current), float64(goal))
		out[key] = MetricSnapshot{
			Current:    current,
			Goal:       goal,
			Percentage: pct,
			Status:     Classify(pct),
			Label:      Label(key),
		}
	}
	return out
}

// EmptyDashboard is the all-zero dashboard shown when counts are unavailable.
func EmptyDashboard(reg *Registry) Dashboard {
	return BuildDashboard(reg, nil)
}
