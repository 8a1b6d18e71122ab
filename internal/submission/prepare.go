package submission

import (
	"fmt"

	"barbercrm/internal/pkg/validator"
	"barbercrm/internal/tracking"
)

var criterionAliases = map[string]string{
	"not_started": string(CriterionNotStarted),
	"не начато":   string(CriterionNotStarted),
	"in_progress": string(CriterionInProgress),
	"в процессе":  string(CriterionInProgress),
	"done":        string(CriterionDone),
	"завершено":   string(CriterionDone),
}

var statusAliases = map[string]string{
	"in_progress":    string(AdaptationInProgress),
	"в процессе":     string(AdaptationInProgress),
	"completed":      string(AdaptationCompleted),
	"завершена":      string(AdaptationCompleted),
	"paused":         string(AdaptationPaused),
	"приостановлена": string(AdaptationPaused),
}

// Prepare turns one raw form row into the canonical record of the given kind.
// Errors are *FieldError.
func Prepare(kind Kind, row Row) (Record, error) {
	r := &reader{row: row}

	var rec Record
	switch kind {
	case KindMorningEvent:
		rec = prepareMorningEvent(r)
	case KindFieldVisit:
		rec = prepareFieldVisit(r)
	case KindOneOnOne:
		rec = prepareOneOnOne(r)
	case KindWeeklyMetrics:
		rec = prepareWeeklyMetrics(r)
	case KindNewbieAdaptation:
		rec = prepareNewbieAdaptation(r)
	case KindMasterPlan:
		rec = prepareMasterPlan(r)
	case KindReview:
		rec = prepareReview(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if r.err != nil {
		return nil, r.err
	}
	if violations := validator.Violations(rec); len(violations) > 0 {
		v := violations[0]
		return nil, &FieldError{Field: v.Field, Kind: MissingField, Err: fmt.Errorf("failed %q", v.Tag)}
	}
	return rec, nil
}

// PrepareBatch prepares every row or none. The first failing row is reported
// as *RowValidationFailed.
func PrepareBatch(kind Kind, rows []Row) ([]Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyBatch
	}
	out := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec, err := Prepare(kind, row)
		if err != nil {
			fe, ok := err.(*FieldError)
			if !ok {
				return nil, err
			}
			return nil, &RowValidationFailed{Row: i + 1, Field: fe.Field, Err: fe}
		}
		out = append(out, rec)
	}
	return out, nil
}

func prepareMorningEvent(r *reader) Record {
	rec := MorningEvent{
		Date:         r.date("date"),
		EventType:    r.text("event_type"),
		Participants: r.integer("participants", 0, 100),
		Efficiency:   r.integer("efficiency", 1, 5),
		Comment:      r.text("comment"),
	}
	// the date decides the week; a submitted week is never trusted
	if !rec.Date.IsZero() {
		rec.Week = tracking.ISOWeek(rec.Date)
	}
	return rec
}

func prepareFieldVisit(r *reader) Record {
	rec := FieldVisit{
		Date:                      r.date("date"),
		MasterName:                r.text("master_name"),
		HaircutQuality:            r.rating("haircut_quality"),
		ServiceQuality:            r.rating("service_quality"),
		AdditionalServicesComment: r.text("additional_services_comment"),
		AdditionalServicesRating:  r.rating("additional_services_rating"),
		CosmeticsComment:          r.text("cosmetics_comment"),
		CosmeticsRating:           r.rating("cosmetics_rating"),
		StandardsComment:          r.text("standards_comment"),
		StandardsRating:           r.rating("standards_rating"),
		ErrorsComment:             r.text("errors_comment"),
		NextCheckDate:             r.optionalDate("next_check_date"),
	}
	if r.err == nil {
		score, err := tracking.OverallScore(rec.HaircutQuality, rec.ServiceQuality,
			rec.AdditionalServicesRating, rec.CosmeticsRating, rec.StandardsRating)
		if err != nil {
			r.fail("overall_score", RatingOutOfRange, err)
		}
		rec.OverallScore = score
	}
	return rec
}

func prepareOneOnOne(r *reader) Record {
	return OneOnOne{
		Date:            r.date("date"),
		MasterName:      r.text("master_name"),
		Goal:            r.text("goal"),
		Results:         r.text("results"),
		DevelopmentPlan: r.text("development_plan"),
		Indicator:       r.text("indicator"),
		NextMeetingDate: r.optionalDate("next_meeting_date"),
	}
}

func prepareWeeklyMetrics(r *reader) Record {
	rec := WeeklyMetrics{
		Period:                 r.text("period"),
		AverageCheckPlan:       r.amount("average_check_plan"),
		AverageCheckFact:       r.amount("average_check_fact"),
		CosmeticsPlan:          r.amount("cosmetics_plan"),
		CosmeticsFact:          r.amount("cosmetics_fact"),
		AdditionalServicesPlan: r.amount("additional_services_plan"),
		AdditionalServicesFact: r.amount("additional_services_fact"),
	}
	rec.AverageCheckPercentage = tracking.PerformancePct(rec.AverageCheckFact, rec.AverageCheckPlan)
	rec.CosmeticsPercentage = tracking.PerformancePct(rec.CosmeticsFact, rec.CosmeticsPlan)
	rec.AdditionalServicesPercentage = tracking.PerformancePct(rec.AdditionalServicesFact, rec.AdditionalServicesPlan)
	return rec
}

func prepareNewbieAdaptation(r *reader) Record {
	return NewbieAdaptation{
		StartDate:          r.date("start_date"),
		Name:               r.text("name"),
		HaircutPractice:    Criterion(r.choice("haircut_practice", criterionAliases, "")),
		ServiceStandards:   Criterion(r.choice("service_standards", criterionAliases, "")),
		HygieneSanitation:  Criterion(r.choice("hygiene_sanitation", criterionAliases, "")),
		AdditionalServices: Criterion(r.choice("additional_services", criterionAliases, "")),
		CosmeticsSales:     Criterion(r.choice("cosmetics_sales", criterionAliases, "")),
		IClientBasics:      Criterion(r.choice("iclient_basics", criterionAliases, "")),
		Status:             AdaptationStatus(r.choice("status", statusAliases, string(AdaptationInProgress))),
	}
}

func prepareMasterPlan(r *reader) Record {
	rec := MasterPlan{
		Month:                  r.text("month"),
		MasterName:             r.text("master_name"),
		AverageCheckPlan:       r.amount("average_check_plan"),
		AverageCheckFact:       r.amount("average_check_fact"),
		AdditionalServicesPlan: r.integer("additional_services_plan", 0, maxCount),
		AdditionalServicesFact: r.integer("additional_services_fact", 0, maxCount),
		SalesPlan:              r.amount("sales_plan"),
		SalesFact:              r.amount("sales_fact"),
		SalaryPlan:             r.amount("salary_plan"),
		SalaryFact:             r.amount("salary_fact"),
	}
	rec.AverageCheckPercentage = tracking.PerformancePct(rec.AverageCheckFact, rec.AverageCheckPlan)
	rec.AdditionalServicesPercentage = tracking.PerformancePct(float64(rec.AdditionalServicesFact), float64(rec.AdditionalServicesPlan))
	rec.SalesPercentage = tracking.PerformancePct(rec.SalesFact, rec.SalesPlan)
	rec.SalaryPercentage = tracking.PerformancePct(rec.SalaryFact, rec.SalaryPlan)
	return rec
}

func prepareReview(r *reader) Record {
	rec := Review{
		Week:          r.text("week"),
		ManagerName:   r.text("manager_name"),
		Plan:          ReviewWeeklyPlan,
		Fact:          r.integer("fact", 0, maxCount),
		MonthlyTarget: ReviewMonthlyTarget,
	}
	rec.WeekPerformance = tracking.PerformancePct(float64(rec.Fact), float64(rec.Plan))
	return rec
}

const maxCount = 1_000_000
