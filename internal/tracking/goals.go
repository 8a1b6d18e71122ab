package tracking

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Metric keys tracked on the branch dashboard.
const (
	MetricMorningEvents = "morning_events"
	MetricFieldVisits   = "field_visits"
	MetricOneOnOne      = "one_on_one"
	MetricWeeklyReports = "weekly_reports"
	MetricMasterPlans   = "master_plans"
	MetricReviews       = "reviews"
	MetricNewEmployees  = "new_employees"
)

// metricOrder is the display order used by the dashboard and the summary sheet.
var metricOrder = []string{
	MetricMorningEvents,
	MetricFieldVisits,
	MetricOneOnOne,
	MetricWeeklyReports,
	MetricMasterPlans,
	MetricReviews,
	MetricNewEmployees,
}

// DefaultGoals is the fixed monthly target table.
var DefaultGoals = map[string]int{
	MetricMorningEvents: 16,
	MetricFieldVisits:   4,
	MetricOneOnOne:      6,
	MetricWeeklyReports: 4,
	MetricMasterPlans:   10,
	MetricReviews:       60,
	MetricNewEmployees:  10,
}

var metricLabels = map[string]string{
	MetricMorningEvents: "Утренние мероприятия",
	MetricFieldVisits:   "Полевые выходы",
	MetricOneOnOne:      "One-on-One",
	MetricWeeklyReports: "Еженедельные отчёты",
	MetricMasterPlans:   "Планы мастеров",
	MetricReviews:       "Отзывы",
	MetricNewEmployees:  "Новые сотрудники",
}

// Label returns the display label of a metric, or the key itself when unknown.
func Label(metricKey string) string {
	if l, ok := metricLabels[metricKey]; ok {
		return l
	}
	return metricKey
}

// IsMetric reports whether key is one of the tracked metrics.
func IsMetric(key string) bool {
	_, ok := DefaultGoals[key]
	return ok
}

// Registry maps metric keys to monthly targets. The zero value is not usable;
// build one with NewRegistry. A Registry is never mutated after construction.
type Registry struct {
	goals map[string]int
}

// NewRegistry returns the default goal table with the given per-metric overrides applied.
func NewRegistry(overrides map[string]int) (*Registry, error) {
	goals := make(map[string]int, len(DefaultGoals))
	for k, v := range DefaultGoals {
		goals[k] = v
	}
	if err := applyOverrides(goals, overrides); err != nil {
		return nil, err
	}
	return &Registry{goals: goals}, nil
}

// MustDefaultRegistry returns the registry without overrides.
func MustDefaultRegistry() *Registry {
	r, _ := NewRegistry(nil)
	return r
}

// WithOverrides returns a copy of r with overrides applied on top.
func (r *Registry) WithOverrides(overrides map[string]int) (*Registry, error) {
	goals := r.Goals()
	if err := applyOverrides(goals, overrides); err != nil {
		return nil, err
	}
	return &Registry{goals: goals}, nil
}

// GoalFor returns the monthly target for metricKey.
func (r *Registry) GoalFor(metricKey string) (int, error) {
	g, ok := r.goals[metricKey]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, metricKey)
	}
	return g, nil
}

// Keys returns the metric keys in display order.
func (r *Registry) Keys() []string {
	out := make([]string, len(metricOrder))
	copy(out, metricOrder)
	return out
}

// Goals returns a copy of the full table.
func (r *Registry) Goals() map[string]int {
	out := make(map[string]int, len(r.goals))
	for k, v := range r.goals {
		out[k] = v
	}
	return out
}

func applyOverrides(goals map[string]int, overrides map[string]int) error {
	for k, v := range overrides {
		if _, ok := goals[k]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMetric, k)
		}
		if v <= 0 {
			return fmt.Errorf("%w: %s=%d", ErrInvalidGoalTarget, k, v)
		}
		goals[k] = v
	}
	return nil
}

// ParseOverrides parses "reviews=52,field_visits=5" into an override map.
// An empty string yields an empty map.
func ParseOverrides(s string) (map[string]int, error) {
	out := map[string]int{}
	s = strings.TrimSpace(s)
	if s == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("goal override %q: expected metric=target", part)
		}
		key = strings.TrimSpace(key)
		if !IsMetric(key) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, key)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("goal override %q: %w", part, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrInvalidGoalTarget, key, n)
		}
		out[key] = n
	}
	return out, nil
}

// FormatOverrides is the inverse of ParseOverrides with keys sorted.
func FormatOverrides(overrides map[string]int) string {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.Itoa(overrides[k]))
	}
	return strings.Join(parts, ",")
}
