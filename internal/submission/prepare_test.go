package submission

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func morningRow(date, participants string) Row {
	return Row{
		"date":         date,
		"week":         "99",
		"event_type":   "Планёрка",
		"participants": participants,
		"efficiency":   "4",
		"comment":      "ok",
	}
}

func TestPrepare_MorningEventWeekComesFromDate(t *testing.T) {
	rec, err := Prepare(KindMorningEvent, morningRow("2024-03-11", "12"))
	require.NoError(t, err)

	ev := rec.(MorningEvent)
	assert.Equal(t, 11, ev.Week)
	assert.Equal(t, 12, ev.Participants)
	assert.Equal(t, 4, ev.Efficiency)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), ev.Date)
}

func TestPrepare_MorningEventBlankWeekIsDerived(t *testing.T) {
	row := morningRow("2024-12-30", "5")
	row["week"] = ""

	rec, err := Prepare(KindMorningEvent, row)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.(MorningEvent).Week)
}

func TestPrepare_MorningEventErrors(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(Row)
		field string
		kind  ErrorKind
	}{
		{"participants not a number", func(r Row) { r["participants"] = "abc" }, "participants", InvalidNumericField},
		{"participants blank", func(r Row) { r["participants"] = "" }, "participants", InvalidNumericField},
		{"participants above 100", func(r Row) { r["participants"] = 101.0 }, "participants", InvalidNumericField},
		{"efficiency zero", func(r Row) { r["efficiency"] = "0" }, "efficiency", InvalidNumericField},
		{"efficiency fractional", func(r Row) { r["efficiency"] = 2.5 }, "efficiency", InvalidNumericField},
		{"date missing", func(r Row) { delete(r, "date") }, "date", MissingField},
		{"date garbage", func(r Row) { r["date"] = "11/03/2024" }, "date", InvalidDate},
		{"event type blank", func(r Row) { r["event_type"] = "  " }, "event_type", MissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := morningRow("2024-03-11", "10")
			tt.edit(row)

			_, err := Prepare(KindMorningEvent, row)
			var fe *FieldError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.kind, fe.Kind)
		})
	}
}

func TestPrepareBatch_RejectsWholeBatch(t *testing.T) {
	rows := []Row{
		morningRow("2024-03-11", "10"),
		morningRow("2024-03-12", "abc"),
		morningRow("2024-03-13", "8"),
	}

	recs, err := PrepareBatch(KindMorningEvent, rows)
	assert.Nil(t, recs)

	var rvf *RowValidationFailed
	require.True(t, errors.As(err, &rvf))
	assert.Equal(t, 2, rvf.Row)
	assert.Equal(t, "participants", rvf.Field)
	assert.Equal(t, InvalidNumericField, rvf.Kind())
}

func TestPrepareBatch_AllRowsValid(t *testing.T) {
	rows := []Row{morningRow("2024-03-11", "10"), morningRow("2024-03-18", "0")}

	recs, err := PrepareBatch(KindMorningEvent, rows)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 12, recs[1].(MorningEvent).Week)
}

func TestPrepareBatch_EmptyAndUnknown(t *testing.T) {
	_, err := PrepareBatch(KindReview, nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = PrepareBatch(Kind("haircut"), []Row{{}})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func fieldVisitRow() Row {
	return Row{
		"date":                       "2024-03-11",
		"master_name":                "Айдар",
		"haircut_quality":            8,
		"service_quality":            "6",
		"additional_services_rating": json.Number("7"),
		"cosmetics_rating":           9.0,
		"standards_rating":           "5",
		"errors_comment":             "",
		"next_check_date":            "",
	}
}

func TestPrepare_FieldVisitScore(t *testing.T) {
	rec, err := Prepare(KindFieldVisit, fieldVisitRow())
	require.NoError(t, err)

	fv := rec.(FieldVisit)
	assert.Equal(t, 7.0, fv.OverallScore)
	assert.Nil(t, fv.NextCheckDate)
}

func TestPrepare_FieldVisitRatingOutOfRange(t *testing.T) {
	for _, bad := range []any{0, "11", -3} {
		row := fieldVisitRow()
		row["cosmetics_rating"] = bad

		_, err := Prepare(KindFieldVisit, row)
		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "cosmetics_rating", fe.Field)
		assert.Equal(t, RatingOutOfRange, fe.Kind)
	}
}

func TestPrepare_FieldVisitNextCheckDate(t *testing.T) {
	row := fieldVisitRow()
	row["next_check_date"] = "2024-04-01"

	rec, err := Prepare(KindFieldVisit, row)
	require.NoError(t, err)
	require.NotNil(t, rec.(FieldVisit).NextCheckDate)
	assert.Equal(t, 2024, rec.(FieldVisit).NextCheckDate.Year())

	row["next_check_date"] = "soon"
	_, err = Prepare(KindFieldVisit, row)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, InvalidDate, fe.Kind)
}

func TestPrepare_OneOnOne(t *testing.T) {
	rec, err := Prepare(KindOneOnOne, Row{
		"date":              "2024-03-11",
		"master_name":       "Ерлан",
		"goal":              "Средний чек",
		"next_meeting_date": "2024-03-25",
	})
	require.NoError(t, err)
	o := rec.(OneOnOne)
	assert.Equal(t, "Средний чек", o.Goal)
	require.NotNil(t, o.NextMeetingDate)

	_, err = Prepare(KindOneOnOne, Row{"date": "2024-03-11"})
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "master_name", fe.Field)
	assert.Equal(t, MissingField, fe.Kind)
}

func TestPrepare_WeeklyMetricsPercentages(t *testing.T) {
	rec, err := Prepare(KindWeeklyMetrics, Row{
		"period":                   "11.03 - 17.03",
		"average_check_plan":       "5000",
		"average_check_fact":       "5500,5",
		"cosmetics_plan":           0,
		"cosmetics_fact":           300,
		"additional_services_plan": 20,
		"additional_services_fact": 15,
	})
	require.NoError(t, err)

	wm := rec.(WeeklyMetrics)
	assert.Equal(t, 5500.5, wm.AverageCheckFact)
	assert.Equal(t, 110.0, wm.AverageCheckPercentage)
	assert.Equal(t, 0.0, wm.CosmeticsPercentage)
	assert.Equal(t, 75.0, wm.AdditionalServicesPercentage)
}

func TestPrepare_WeeklyMetricsRejectsNegative(t *testing.T) {
	_, err := Prepare(KindWeeklyMetrics, Row{
		"period":                   "w11",
		"average_check_plan":       -1,
		"average_check_fact":       1,
		"cosmetics_plan":           1,
		"cosmetics_fact":           1,
		"additional_services_plan": 1,
		"additional_services_fact": 1,
	})
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "average_check_plan", fe.Field)
	assert.Equal(t, InvalidNumericField, fe.Kind)
}

func newbieRow() Row {
	return Row{
		"start_date":          "2024-03-01",
		"name":                "Тимур",
		"haircut_practice":    "Не начато",
		"service_standards":   "В процессе",
		"hygiene_sanitation":  "Завершено",
		"additional_services": "done",
		"cosmetics_sales":     "not_started",
		"iclient_basics":      "in_progress",
		"status":              "",
	}
}

func TestPrepare_NewbieAdaptation(t *testing.T) {
	rec, err := Prepare(KindNewbieAdaptation, newbieRow())
	require.NoError(t, err)

	n := rec.(NewbieAdaptation)
	assert.Equal(t, CriterionNotStarted, n.HaircutPractice)
	assert.Equal(t, CriterionInProgress, n.ServiceStandards)
	assert.Equal(t, CriterionDone, n.HygieneSanitation)
	assert.Equal(t, AdaptationInProgress, n.Status)

	row := newbieRow()
	row["status"] = "Приостановлена"
	rec, err = Prepare(KindNewbieAdaptation, row)
	require.NoError(t, err)
	assert.Equal(t, AdaptationPaused, rec.(NewbieAdaptation).Status)
}

func TestPrepare_NewbieAdaptationChoices(t *testing.T) {
	row := newbieRow()
	row["status"] = "уволен"
	_, err := Prepare(KindNewbieAdaptation, row)
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, InvalidChoice, fe.Kind)
	assert.Equal(t, "status", fe.Field)

	row = newbieRow()
	row["iclient_basics"] = ""
	_, err = Prepare(KindNewbieAdaptation, row)
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, MissingField, fe.Kind)
	assert.Equal(t, "iclient_basics", fe.Field)
}

func TestPrepare_MasterPlan(t *testing.T) {
	rec, err := Prepare(KindMasterPlan, Row{
		"month":                    "Март 2024",
		"master_name":              "Данияр",
		"average_check_plan":       4000,
		"average_check_fact":       3000,
		"additional_services_plan": "10",
		"additional_services_fact": "12",
		"sales_plan":               100000,
		"sales_fact":               50000,
		"salary_plan":              0,
		"salary_fact":              200000,
	})
	require.NoError(t, err)

	mp := rec.(MasterPlan)
	assert.Equal(t, 75.0, mp.AverageCheckPercentage)
	assert.Equal(t, 120.0, mp.AdditionalServicesPercentage)
	assert.Equal(t, 50.0, mp.SalesPercentage)
	assert.Equal(t, 0.0, mp.SalaryPercentage)
}

func TestPrepare_ReviewPlanIsFixed(t *testing.T) {
	rec, err := Prepare(KindReview, Row{
		"week":           "11",
		"manager_name":   "Асель",
		"plan":           20,
		"fact":           "10",
		"monthly_target": 100,
	})
	require.NoError(t, err)

	rv := rec.(Review)
	assert.Equal(t, 13, rv.Plan)
	assert.Equal(t, 52, rv.MonthlyTarget)
	assert.Equal(t, 76.9, rv.WeekPerformance)
}

func TestPrepare_UnknownKind(t *testing.T) {
	_, err := Prepare(Kind("branch_summary"), Row{})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindForResource(t *testing.T) {
	for _, k := range Kinds() {
		got, err := KindForResource(k.Resource())
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.NotEmpty(t, k.Metric())
	}
	_, err := KindForResource("branch-summary")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
