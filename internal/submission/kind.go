package submission

import (
	"fmt"

	"barbercrm/internal/tracking"
)

// Kind names one of the seven form types.
type Kind string

const (
	KindMorningEvent     Kind = "morning_event"
	KindFieldVisit       Kind = "field_visit"
	KindOneOnOne         Kind = "one_on_one"
	KindWeeklyMetrics    Kind = "weekly_metrics"
	KindNewbieAdaptation Kind = "newbie_adaptation"
	KindMasterPlan       Kind = "master_plan"
	KindReview           Kind = "review"
)

type kindInfo struct {
	resource string
	metric   string
}

var kinds = map[Kind]kindInfo{
	KindMorningEvent:     {resource: "morning-events", metric: tracking.MetricMorningEvents},
	KindFieldVisit:       {resource: "field-visits", metric: tracking.MetricFieldVisits},
	KindOneOnOne:         {resource: "one-on-one", metric: tracking.MetricOneOnOne},
	KindWeeklyMetrics:    {resource: "weekly-metrics", metric: tracking.MetricWeeklyReports},
	KindNewbieAdaptation: {resource: "newbie-adaptation", metric: tracking.MetricNewEmployees},
	KindMasterPlan:       {resource: "master-plans", metric: tracking.MetricMasterPlans},
	KindReview:           {resource: "reviews", metric: tracking.MetricReviews},
}

// Kinds lists every form kind in dashboard order.
func Kinds() []Kind {
	return []Kind{
		KindMorningEvent,
		KindFieldVisit,
		KindOneOnOne,
		KindWeeklyMetrics,
		KindMasterPlan,
		KindReview,
		KindNewbieAdaptation,
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Resource is the URL segment the kind is served under.
func (k Kind) Resource() string { return kinds[k].resource }

// Metric is the dashboard metric key the kind is counted towards.
func (k Kind) Metric() string { return kinds[k].metric }

// KindForResource maps a URL segment such as "field-visits" back to its kind.
func KindForResource(resource string) (Kind, error) {
	for k, info := range kinds {
		if info.resource == resource {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, resource)
}
