package summary

import "errors"

var (
	ErrInvalidMonth      = errors.New("invalid month")
	ErrCountsUnavailable = errors.New("record counts are unavailable")
)
