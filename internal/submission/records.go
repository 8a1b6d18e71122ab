package submission

import "time"

// Record is a canonical, fully typed form record.
type Record interface {
	Kind() Kind
}

type MorningEvent struct {
	Date         time.Time `json:"date"`
	Week         int       `json:"week" validate:"min=1,max=53"`
	EventType    string    `json:"event_type" validate:"required"`
	Participants int       `json:"participants"`
	Efficiency   int       `json:"efficiency"`
	Comment      string    `json:"comment"`
}

// FieldVisit carries OverallScore for display on submit; storage recomputes it.
type FieldVisit struct {
	Date                      time.Time  `json:"date"`
	MasterName                string     `json:"master_name" validate:"required"`
	HaircutQuality            int        `json:"haircut_quality"`
	ServiceQuality            int        `json:"service_quality"`
	AdditionalServicesComment string     `json:"additional_services_comment"`
	AdditionalServicesRating  int        `json:"additional_services_rating"`
	CosmeticsComment          string     `json:"cosmetics_comment"`
	CosmeticsRating           int        `json:"cosmetics_rating"`
	StandardsComment          string     `json:"standards_comment"`
	StandardsRating           int        `json:"standards_rating"`
	ErrorsComment             string     `json:"errors_comment"`
	NextCheckDate             *time.Time `json:"next_check_date,omitempty"`
	OverallScore              float64    `json:"overall_score"`
}

type OneOnOne struct {
	Date            time.Time  `json:"date"`
	MasterName      string     `json:"master_name" validate:"required"`
	Goal            string     `json:"goal"`
	Results         string     `json:"results"`
	DevelopmentPlan string     `json:"development_plan"`
	Indicator       string     `json:"indicator"`
	NextMeetingDate *time.Time `json:"next_meeting_date,omitempty"`
}

type WeeklyMetrics struct {
	Period                       string  `json:"period" validate:"required"`
	AverageCheckPlan             float64 `json:"average_check_plan"`
	AverageCheckFact             float64 `json:"average_check_fact"`
	CosmeticsPlan                float64 `json:"cosmetics_plan"`
	CosmeticsFact                float64 `json:"cosmetics_fact"`
	AdditionalServicesPlan       float64 `json:"additional_services_plan"`
	AdditionalServicesFact       float64 `json:"additional_services_fact"`
	AverageCheckPercentage       float64 `json:"average_check_percentage"`
	CosmeticsPercentage          float64 `json:"cosmetics_percentage"`
	AdditionalServicesPercentage float64 `json:"additional_services_percentage"`
}

// Criterion is the progress of one newbie training area.
type Criterion string

const (
	CriterionNotStarted Criterion = "not_started"
	CriterionInProgress Criterion = "in_progress"
	CriterionDone       Criterion = "done"
)

// AdaptationStatus is set by the manager; nothing derives it.
type AdaptationStatus string

const (
	AdaptationInProgress AdaptationStatus = "in_progress"
	AdaptationCompleted  AdaptationStatus = "completed"
	AdaptationPaused     AdaptationStatus = "paused"
)

type NewbieAdaptation struct {
	StartDate          time.Time        `json:"start_date"`
	Name               string           `json:"name" validate:"required"`
	HaircutPractice    Criterion        `json:"haircut_practice"`
	ServiceStandards   Criterion        `json:"service_standards"`
	HygieneSanitation  Criterion        `json:"hygiene_sanitation"`
	AdditionalServices Criterion        `json:"additional_services"`
	CosmeticsSales     Criterion        `json:"cosmetics_sales"`
	IClientBasics      Criterion        `json:"iclient_basics"`
	Status             AdaptationStatus `json:"status"`
}

type MasterPlan struct {
	Month                        string  `json:"month" validate:"required"`
	MasterName                   string  `json:"master_name" validate:"required"`
	AverageCheckPlan             float64 `json:"average_check_plan"`
	AverageCheckFact             float64 `json:"average_check_fact"`
	AdditionalServicesPlan       int     `json:"additional_services_plan"`
	AdditionalServicesFact       int     `json:"additional_services_fact"`
	SalesPlan                    float64 `json:"sales_plan"`
	SalesFact                    float64 `json:"sales_fact"`
	SalaryPlan                   float64 `json:"salary_plan"`
	SalaryFact                   float64 `json:"salary_fact"`
	AverageCheckPercentage       float64 `json:"average_check_percentage"`
	AdditionalServicesPercentage float64 `json:"additional_services_percentage"`
	SalesPercentage              float64 `json:"sales_percentage"`
	SalaryPercentage             float64 `json:"salary_percentage"`
}

// Review plan and monthly target are fixed; submitted values are ignored.
const (
	ReviewWeeklyPlan    = 13
	ReviewMonthlyTarget = 52
)

type Review struct {
	Week            string  `json:"week" validate:"required"`
	ManagerName     string  `json:"manager_name" validate:"required"`
	Plan            int     `json:"plan"`
	Fact            int     `json:"fact"`
	MonthlyTarget   int     `json:"monthly_target"`
	WeekPerformance float64 `json:"week_performance"`
}

func (MorningEvent) Kind() Kind     { return KindMorningEvent }
func (FieldVisit) Kind() Kind       { return KindFieldVisit }
func (OneOnOne) Kind() Kind         { return KindOneOnOne }
func (WeeklyMetrics) Kind() Kind    { return KindWeeklyMetrics }
func (NewbieAdaptation) Kind() Kind { return KindNewbieAdaptation }
func (MasterPlan) Kind() Kind       { return KindMasterPlan }
func (Review) Kind() Kind           { return KindReview }
