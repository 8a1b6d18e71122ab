package export

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"barbercrm/internal/modules/dashboard"
	"barbercrm/internal/tracking"

	"github.com/xuri/excelize/v2"
)

const dashboardSheet = "dashboard"

var skippedColumns = map[string]bool{"branch_id": true}

type styles struct {
	header int
	met    int
	near   int
	behind int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	}); err != nil {
		return s, err
	}
	if s.met, err = fillStyle(f, "#C6EFCE"); err != nil {
		return s, err
	}
	if s.near, err = fillStyle(f, "#FFEB9C"); err != nil {
		return s, err
	}
	s.behind, err = fillStyle(f, "#FFC7CE")
	return s, err
}

func fillStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
}

func (s styles) status(st tracking.Status) int {
	switch st {
	case tracking.StatusMet:
		return s.met
	case tracking.StatusNear:
		return s.near
	default:
		return s.behind
	}
}

func writeDashboard(f *excelize.File, st styles, summary *dashboard.Summary) error {
	if _, err := f.NewSheet(dashboardSheet); err != nil {
		return err
	}
	header := []any{"metric", "label", "current", "goal", "percentage", "status"}
	if err := writeRow(f, dashboardSheet, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, dashboardSheet, 1, len(header), st.header); err != nil {
		return err
	}

	row := 2
	for _, key := range tracking.MustDefaultRegistry().Keys() {
		snap, ok := summary.Metrics[key]
		if !ok {
			continue
		}
		values := []any{key, snap.Label, snap.Current, snap.Goal, snap.Percentage, string(snap.Status)}
		if err := writeRow(f, dashboardSheet, row, values); err != nil {
			return err
		}
		if err := styleRow(f, dashboardSheet, row, len(values), st.status(snap.Status)); err != nil {
			return err
		}
		row++
	}

	if err := writeRow(f, dashboardSheet, row+1, []any{"month", summary.MonthLabel}); err != nil {
		return err
	}
	if summary.Degraded {
		if err := writeRow(f, dashboardSheet, row+2, []any{"degraded", "counts unavailable"}); err != nil {
			return err
		}
	}
	return f.SetColWidth(dashboardSheet, "A", "B", 24)
}

// writeRecords lays out a slice of records with one column per JSON field.
func writeRecords(f *excelize.File, st styles, sheet string, list any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	v := reflect.Indirect(reflect.ValueOf(list))
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("export %s: expected slice, got %s", sheet, v.Kind())
	}
	t := v.Type().Elem()

	var fields []int
	var header []any
	for i := 0; i < t.NumField(); i++ {
		name := columnName(t.Field(i))
		if name == "" {
			continue
		}
		fields = append(fields, i)
		header = append(header, name)
	}

	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, sheet, 1, len(header), st.header); err != nil {
		return err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	for r := 0; r < v.Len(); r++ {
		item := v.Index(r)
		values := make([]any, 0, len(fields))
		for _, i := range fields {
			values = append(values, cellValue(item.Field(i)))
		}
		if err := writeRow(f, sheet, r+2, values); err != nil {
			return err
		}
	}
	return nil
}

func columnName(sf reflect.StructField) string {
	if !sf.IsExported() {
		return ""
	}
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" || skippedColumns[name] {
		return ""
	}
	return name
}

func cellValue(v reflect.Value) any {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if t, ok := v.Interface().(time.Time); ok {
		return formatTime(t)
	}
	return v.Interface()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.UTC()
	if t.Equal(tracking.DateOnly(t)) {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return err
		}
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, cols, style int) error {
	if cols == 0 {
		return nil
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}
