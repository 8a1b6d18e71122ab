package tracking

import "errors"

var (
	ErrUnknownMetric     = errors.New("unknown metric")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidMonth      = errors.New("invalid month")
	ErrRatingOutOfRange  = errors.New("rating out of range")
	ErrInvalidGoalTarget = errors.New("goal target must be positive")
)
