package tracking

import (
	"fmt"
	"math"
)

const (
	MinRating = 1
	MaxRating = 10
)

// Round1 rounds x to one decimal place, halves away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// OverallScore is the unweighted mean of the five field-visit ratings,
// rounded to one decimal. Every rating must be in [1,10].
func OverallScore(haircut, service, additionalServices, cosmetics, standards int) (float64, error) {
	ratings := [5]int{haircut, service, additionalServices, cosmetics, standards}
	sum := 0
	for _, r := range ratings {
		if r < MinRating || r > MaxRating {
			return 0, fmt.Errorf("%w: %d", ErrRatingOutOfRange, r)
		}
		sum += r
	}
	return Round1(float64(sum) / 5), nil
}
