package tracking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthNamesRU = [12]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// Month identifies a calendar month. Records are counted per Month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t (in UTC).
func MonthOf(t time.Time) Month {
	t = t.UTC()
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth accepts "2026-03" or the Russian label used by the UI ("Март 2026").
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01", s); err == nil {
		return Month{Year: t.Year(), Month: t.Month()}, nil
	}
	fields := strings.Fields(s)
	if len(fields) == 2 {
		year, err := strconv.Atoi(fields[1])
		if err == nil && year > 0 {
			for i, name := range monthNamesRU {
				if strings.EqualFold(name, fields[0]) {
					return Month{Year: year, Month: time.Month(i + 1)}, nil
				}
			}
		}
	}
	return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
}

// Range returns the half-open UTC interval [start, end) of the month.
func (m Month) Range() (time.Time, time.Time) {
	start := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Key is the machine form, "2026-03".
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label is the Russian display form, "Март 2026".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", monthNamesRU[m.Month-1], m.Year)
}

func (m Month) String() string { return m.Key() }
