package domain

import "time"

// Record is a stored form record. Records are append-only.
type Record interface {
	TableName() string
	OwnedBy(branchID int64)
}

type MorningEvent struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	BranchID     int64     `json:"branch_id" gorm:"index;not null"`
	Week         int       `json:"week"`
	Date         time.Time `json:"date"`
	EventType    string    `json:"event_type"`
	Participants int       `json:"participants"`
	Efficiency   int       `json:"efficiency"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

type FieldVisit struct {
	ID                        int64      `json:"id" gorm:"primaryKey"`
	BranchID                  int64      `json:"branch_id" gorm:"index;not null"`
	Date                      time.Time  `json:"date"`
	MasterName                string     `json:"master_name"`
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
	CreatedAt                 time.Time  `json:"created_at" gorm:"index"`
}

type OneOnOne struct {
	ID              int64      `json:"id" gorm:"primaryKey"`
	BranchID        int64      `json:"branch_id" gorm:"index;not null"`
	Date            time.Time  `json:"date"`
	MasterName      string     `json:"master_name"`
	Goal            string     `json:"goal"`
	Results         string     `json:"results"`
	DevelopmentPlan string     `json:"development_plan"`
	Indicator       string     `json:"indicator"`
	NextMeetingDate *time.Time `json:"next_meeting_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at" gorm:"index"`
}

type WeeklyMetrics struct {
	ID                           int64     `json:"id" gorm:"primaryKey"`
	BranchID                     int64     `json:"branch_id" gorm:"index;not null"`
	Period                       string    `json:"period"`
	AverageCheckPlan             float64   `json:"average_check_plan"`
	AverageCheckFact             float64   `json:"average_check_fact"`
	CosmeticsPlan                float64   `json:"cosmetics_plan"`
	CosmeticsFact                float64   `json:"cosmetics_fact"`
	AdditionalServicesPlan       float64   `json:"additional_services_plan"`
	AdditionalServicesFact       float64   `json:"additional_services_fact"`
	AverageCheckPercentage       float64   `json:"average_check_percentage"`
	CosmeticsPercentage          float64   `json:"cosmetics_percentage"`
	AdditionalServicesPercentage float64   `json:"additional_services_percentage"`
	CreatedAt                    time.Time `json:"created_at" gorm:"index"`
}

type NewbieAdaptation struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	BranchID           int64     `json:"branch_id" gorm:"index;not null"`
	StartDate          time.Time `json:"start_date"`
	Name               string    `json:"name"`
	HaircutPractice    string    `json:"haircut_practice"`
	ServiceStandards   string    `json:"service_standards"`
	HygieneSanitation  string    `json:"hygiene_sanitation"`
	AdditionalServices string    `json:"additional_services"`
	CosmeticsSales     string    `json:"cosmetics_sales"`
	IClientBasics      string    `json:"iclient_basics" gorm:"column:iclient_basics"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at" gorm:"index"`
}

type MasterPlan struct {
	ID                           int64     `json:"id" gorm:"primaryKey"`
	BranchID                     int64     `json:"branch_id" gorm:"index;not null"`
	Month                        string    `json:"month"`
	MasterName                   string    `json:"master_name"`
	AverageCheckPlan             float64   `json:"average_check_plan"`
	AverageCheckFact             float64   `json:"average_check_fact"`
	AdditionalServicesPlan       int       `json:"additional_services_plan"`
	AdditionalServicesFact       int       `json:"additional_services_fact"`
	SalesPlan                    float64   `json:"sales_plan"`
	SalesFact                    float64   `json:"sales_fact"`
	SalaryPlan                   float64   `json:"salary_plan"`
	SalaryFact                   float64   `json:"salary_fact"`
	AverageCheckPercentage       float64   `json:"average_check_percentage"`
	AdditionalServicesPercentage float64   `json:"additional_services_percentage"`
	SalesPercentage              float64   `json:"sales_percentage"`
	SalaryPercentage             float64   `json:"salary_percentage"`
	CreatedAt                    time.Time `json:"created_at" gorm:"index"`
}

type Review struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	BranchID        int64     `json:"branch_id" gorm:"index;not null"`
	Week            string    `json:"week"`
	ManagerName     string    `json:"manager_name"`
	Plan            int       `json:"plan"`
	Fact            int       `json:"fact"`
	MonthlyTarget   int       `json:"monthly_target"`
	WeekPerformance float64   `json:"week_performance"`
	CreatedAt       time.Time `json:"created_at" gorm:"index"`
}

func (MorningEvent) TableName() string     { return "morning_events" }
func (FieldVisit) TableName() string       { return "field_visits" }
func (OneOnOne) TableName() string         { return "one_on_ones" }
func (WeeklyMetrics) TableName() string    { return "weekly_metrics" }
func (NewbieAdaptation) TableName() string { return "newbie_adaptations" }
func (MasterPlan) TableName() string       { return "master_plans" }
func (Review) TableName() string           { return "reviews" }

func (r *MorningEvent) OwnedBy(branchID int64)     { r.BranchID = branchID }
func (r *FieldVisit) OwnedBy(branchID int64)       { r.BranchID = branchID }
func (r *OneOnOne) OwnedBy(branchID int64)         { r.BranchID = branchID }
func (r *WeeklyMetrics) OwnedBy(branchID int64)    { r.BranchID = branchID }
func (r *NewbieAdaptation) OwnedBy(branchID int64) { r.BranchID = branchID }
func (r *MasterPlan) OwnedBy(branchID int64)       { r.BranchID = branchID }
func (r *Review) OwnedBy(branchID int64)           { r.BranchID = branchID }

// RecordModels lists every record table for migrations.
func RecordModels() []any {
	return []any{
		&MorningEvent{},
		&FieldVisit{},
		&OneOnOne{},
		&WeeklyMetrics{},
		&NewbieAdaptation{},
		&MasterPlan{},
		&Review{},
	}
}
