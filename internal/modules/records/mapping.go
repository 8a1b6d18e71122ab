package records

import (
	"fmt"

	"barbercrm/internal/domain"
	"barbercrm/internal/submission"
)

func toEntity(rec submission.Record) (domain.Record, error) {
	switch r := rec.(type) {
	case submission.MorningEvent:
		return &domain.MorningEvent{
			Week:         r.Week,
			Date:         r.Date,
			EventType:    r.EventType,
			Participants: r.Participants,
			Efficiency:   r.Efficiency,
			Comment:      r.Comment,
		}, nil
	case submission.FieldVisit:
		return &domain.FieldVisit{
			Date:                      r.Date,
			MasterName:                r.MasterName,
			HaircutQuality:            r.HaircutQuality,
			ServiceQuality:            r.ServiceQuality,
			AdditionalServicesComment: r.AdditionalServicesComment,
			AdditionalServicesRating:  r.AdditionalServicesRating,
			CosmeticsComment:          r.CosmeticsComment,
			CosmeticsRating:           r.CosmeticsRating,
			StandardsComment:          r.StandardsComment,
			StandardsRating:           r.StandardsRating,
			ErrorsComment:             r.ErrorsComment,
			NextCheckDate:             r.NextCheckDate,
			OverallScore:              r.OverallScore,
		}, nil
	case submission.OneOnOne:
		return &domain.OneOnOne{
			Date:            r.Date,
			MasterName:      r.MasterName,
			Goal:            r.Goal,
			Results:         r.Results,
			DevelopmentPlan: r.DevelopmentPlan,
			Indicator:       r.Indicator,
			NextMeetingDate: r.NextMeetingDate,
		}, nil
	case submission.WeeklyMetrics:
		return &domain.WeeklyMetrics{
			Period:                       r.Period,
			AverageCheckPlan:             r.AverageCheckPlan,
			AverageCheckFact:             r.AverageCheckFact,
			CosmeticsPlan:                r.CosmeticsPlan,
			CosmeticsFact:                r.CosmeticsFact,
			AdditionalServicesPlan:       r.AdditionalServicesPlan,
			AdditionalServicesFact:       r.AdditionalServicesFact,
			AverageCheckPercentage:       r.AverageCheckPercentage,
			CosmeticsPercentage:          r.CosmeticsPercentage,
			AdditionalServicesPercentage: r.AdditionalServicesPercentage,
		}, nil
	case submission.NewbieAdaptation:
		return &domain.NewbieAdaptation{
			StartDate:          r.StartDate,
			Name:               r.Name,
			HaircutPractice:    string(r.HaircutPractice),
			ServiceStandards:   string(r.ServiceStandards),
			HygieneSanitation:  string(r.HygieneSanitation),
			AdditionalServices: string(r.AdditionalServices),
			CosmeticsSales:     string(r.CosmeticsSales),
			IClientBasics:      string(r.IClientBasics),
			Status:             string(r.Status),
		}, nil
	case submission.MasterPlan:
		return &domain.MasterPlan{
			Month:                        r.Month,
			MasterName:                   r.MasterName,
			AverageCheckPlan:             r.AverageCheckPlan,
			AverageCheckFact:             r.AverageCheckFact,
			AdditionalServicesPlan:       r.AdditionalServicesPlan,
			AdditionalServicesFact:       r.AdditionalServicesFact,
			SalesPlan:                    r.SalesPlan,
			SalesFact:                    r.SalesFact,
			SalaryPlan:                   r.SalaryPlan,
			SalaryFact:                   r.SalaryFact,
			AverageCheckPercentage:       r.AverageCheckPercentage,
			AdditionalServicesPercentage: r.AdditionalServicesPercentage,
			SalesPercentage:              r.SalesPercentage,
			SalaryPercentage:             r.SalaryPercentage,
		}, nil
	case submission.Review:
		return &domain.Review{
			Week:            r.Week,
			ManagerName:     r.ManagerName,
			Plan:            r.Plan,
			Fact:            r.Fact,
			MonthlyTarget:   r.MonthlyTarget,
			WeekPerformance: r.WeekPerformance,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", submission.ErrUnknownKind, rec)
	}
}

// newList returns a pointer to an empty slice of the stored type of kind.
func newList(kind submission.Kind) (any, error) {
	switch kind {
	case submission.KindMorningEvent:
		return &[]domain.MorningEvent{}, nil
	case submission.KindFieldVisit:
		return &[]domain.FieldVisit{}, nil
	case submission.KindOneOnOne:
		return &[]domain.OneOnOne{}, nil
	case submission.KindWeeklyMetrics:
		return &[]domain.WeeklyMetrics{}, nil
	case submission.KindNewbieAdaptation:
		return &[]domain.NewbieAdaptation{}, nil
	case submission.KindMasterPlan:
		return &[]domain.MasterPlan{}, nil
	case submission.KindReview:
		return &[]domain.Review{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", submission.ErrUnknownKind, kind)
	}
}
