package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2026-03")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2026, Month: time.March}, m)

	m, err = ParseMonth("Март 2026")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2026, Month: time.March}, m)
	assert.Equal(t, "Март 2026", m.Label())
	assert.Equal(t, "2026-03", m.Key())

	m, err = ParseMonth("декабрь 2025")
	require.NoError(t, err)
	assert.Equal(t, time.December, m.Month)

	for _, bad := range []string{"", "Март", "March 2026", "2026-13"} {
		_, err := ParseMonth(bad)
		assert.ErrorIs(t, err, ErrInvalidMonth, bad)
	}
}

func TestMonthRange(t *testing.T) {
	start, end := Month{Year: 2025, Month: time.December}.Range()
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthOf(t *testing.T) {
	ts := time.Date(2026, 2, 28, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, Month{Year: 2026, Month: time.February}, MonthOf(ts))
}
