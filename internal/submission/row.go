package submission

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"barbercrm/internal/tracking"
)

// Row is one raw form row as decoded from the request body. Numeric inputs may
// arrive either as JSON numbers or as the strings typed into the form.
type Row map[string]any

var (
	errNotANumber  = errors.New("not a number")
	errNotInteger  = errors.New("not an integer")
	errNegative    = errors.New("must not be negative")
	errBlank       = errors.New("blank")
	errUnsupported = errors.New("unsupported value type")
)

// reader pulls typed fields out of a Row and keeps the first failure.
type reader struct {
	row Row
	err *FieldError
}

func (r *reader) fail(field string, kind ErrorKind, err error) {
	if r.err == nil {
		r.err = &FieldError{Field: field, Kind: kind, Err: err}
	}
}

func (r *reader) text(field string) string {
	v, ok := r.row[field]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func (r *reader) number(field string) (float64, bool) {
	v, ok := r.row[field]
	if !ok || v == nil {
		r.fail(field, InvalidNumericField, errBlank)
		return 0, false
	}
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		f, err = t.Float64()
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			r.fail(field, InvalidNumericField, errBlank)
			return 0, false
		}
		f, err = strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	default:
		err = errUnsupported
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		r.fail(field, InvalidNumericField, errNotANumber)
		return 0, false
	}
	return f, true
}

// amount reads a non-negative decimal.
func (r *reader) amount(field string) float64 {
	f, ok := r.number(field)
	if !ok {
		return 0
	}
	if f < 0 {
		r.fail(field, InvalidNumericField, errNegative)
		return 0
	}
	return f
}

// integer reads a whole number within [min, max].
func (r *reader) integer(field string, min, max int) int {
	f, ok := r.number(field)
	if !ok {
		return 0
	}
	if f != math.Trunc(f) {
		r.fail(field, InvalidNumericField, errNotInteger)
		return 0
	}
	n := int(f)
	if n < min || n > max {
		r.fail(field, InvalidNumericField, fmt.Errorf("%d not in [%d, %d]", n, min, max))
		return 0
	}
	return n
}

func (r *reader) rating(field string) int {
	f, ok := r.number(field)
	if !ok {
		return 0
	}
	n := int(f)
	if f != math.Trunc(f) {
		r.fail(field, InvalidNumericField, errNotInteger)
		return 0
	}
	if n < tracking.MinRating || n > tracking.MaxRating {
		r.fail(field, RatingOutOfRange, fmt.Errorf("%w: %d", tracking.ErrRatingOutOfRange, n))
		return 0
	}
	return n
}

func (r *reader) date(field string) time.Time {
	s := r.text(field)
	if s == "" {
		r.fail(field, MissingField, errBlank)
		return time.Time{}
	}
	d, err := tracking.ParseDate(s)
	if err != nil {
		r.fail(field, InvalidDate, err)
		return time.Time{}
	}
	return d
}

func (r *reader) optionalDate(field string) *time.Time {
	if r.text(field) == "" {
		return nil
	}
	d := r.date(field)
	if d.IsZero() {
		return nil
	}
	return &d
}

// choice normalizes an enumerated value through aliases. A blank value yields def,
// or MissingField when def is empty.
func (r *reader) choice(field string, aliases map[string]string, def string) string {
	s := r.text(field)
	if s == "" {
		if def == "" {
			r.fail(field, MissingField, errBlank)
		}
		return def
	}
	if v, ok := aliases[strings.ToLower(s)]; ok {
		return v
	}
	r.fail(field, InvalidChoice, fmt.Errorf("%q", s))
	return ""
}
