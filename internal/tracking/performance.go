package tracking

// Status classifies a percentage-of-plan for display.
type Status string

const (
	StatusMet    Status = "met"
	StatusNear   Status = "near"
	StatusBehind Status = "behind"
)

const nearThreshold = 75

// PerformancePct returns fact/plan as a percentage rounded to one decimal.
// A non-positive plan yields 0. There is no upper bound.
func PerformancePct(fact, plan float64) float64 {
	if plan <= 0 {
		return 0
	}
	return Round1(fact / plan * 100)
}

// Classify maps a percentage to met (>=100), near (>=75) or behind.
func Classify(pct float64) Status {
	switch {
	case pct >= 100:
		return StatusMet
	case pct >= nearThreshold:
		return StatusNear
	default:
		return StatusBehind
	}
}
