package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name    string
		ratings [5]int
		want    float64
	}{
		{"all ten", [5]int{10, 10, 10, 10, 10}, 10.0},
		{"all one", [5]int{1, 1, 1, 1, 1}, 1.0},
		{"mixed", [5]int{8, 6, 7, 9, 5}, 7.0},
		{"fractional mean", [5]int{7, 7, 7, 7, 8}, 7.2},
		{"one decimal", [5]int{9, 9, 8, 8, 9}, 8.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.ratings
			got, err := OverallScore(r[0], r[1], r[2], r[3], r[4])
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverallScore_RejectsOutOfRange(t *testing.T) {
	cases := [][5]int{
		{0, 5, 5, 5, 5},
		{5, 5, 5, 5, 11},
		{5, -1, 5, 5, 5},
	}
	for _, r := range cases {
		_, err := OverallScore(r[0], r[1], r[2], r[3], r[4])
		assert.ErrorIs(t, err, ErrRatingOutOfRange)
	}
}
