package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"barbercrm/internal/config"
	"barbercrm/internal/database"
	"barbercrm/internal/logger"
	"barbercrm/internal/modules/auth"
	"barbercrm/internal/modules/records"
	jwtsvc "barbercrm/internal/pkg/jwt"
	"barbercrm/internal/repository"
	"barbercrm/internal/submission"
	"barbercrm/internal/tracking"

	"go.uber.org/zap"
)

const (
	demoBranch   = "Демо"
	demoPassword = "demo123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logg, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, logg)
	if err != nil {
		logg.Fatal("db connect failed", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		logg.Fatal("migrate failed", zap.Error(err))
	}

	ctx := context.Background()
	authService := auth.NewService(repository.NewBranchRepository(db), jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL))
	recordService := records.NewService(repository.NewRecordRepository(db), cfg.HistoryLimit, logg)

	branch, _, err := authService.Register(ctx, auth.RegisterRequest{
		Name:         demoBranch,
		Address:      "пр. Достык 5",
		ManagerName:  "Асель Нурланова",
		ManagerPhone: "+7 701 555 12 34",
		Password:     demoPassword,
	})
	if errors.Is(err, auth.ErrBranchExists) {
		logg.Info("demo branch already seeded", zap.String("branch", demoBranch))
		return
	}
	if err != nil {
		logg.Fatal("register demo branch failed", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().UTC()
	masters := []string{"Ержан", "Дамир", "Тимур", "Алибек"}
	day := func(back int) string { return today.AddDate(0, 0, -back).Format("2006-01-02") }

	batches := map[submission.Kind][]submission.Row{}

	for i := 0; i < 10; i++ {
		batches[submission.KindMorningEvent] = append(batches[submission.KindMorningEvent], submission.Row{
			"date":         day(i),
			"event_type":   []string{"Планёрка", "Разбор отзывов", "Тренинг"}[i%3],
			"participants": 4 + rng.Intn(6),
			"efficiency":   3 + rng.Intn(3),
			"comment":      "",
		})
	}

	for i, m := range masters[:3] {
		batches[submission.KindFieldVisit] = append(batches[submission.KindFieldVisit], submission.Row{
			"date":                       day(i * 3),
			"master_name":                m,
			"haircut_quality":            6 + rng.Intn(5),
			"service_quality":            6 + rng.Intn(5),
			"additional_services_rating": 5 + rng.Intn(6),
			"cosmetics_rating":           5 + rng.Intn(6),
			"standards_rating":           7 + rng.Intn(4),
			"errors_comment":             "",
			"next_check_date":            today.AddDate(0, 0, 14).Format("2006-01-02"),
		})
	}

	for i, m := range masters {
		batches[submission.KindOneOnOne] = append(batches[submission.KindOneOnOne], submission.Row{
			"date":             day(i * 2),
			"master_name":      m,
			"goal":             "Средний чек +10%",
			"results":          "Обсудили продажи косметики",
			"development_plan": "Курс по бороде",
			"indicator":        "Средний чек",
		})
	}

	for w := 1; w <= 4; w++ {
		batches[submission.KindWeeklyMetrics] = append(batches[submission.KindWeeklyMetrics], submission.Row{
			"period":                   fmt.Sprintf("Неделя %d", w),
			"average_check_plan":       9000,
			"average_check_fact":       8000 + rng.Intn(2500),
			"cosmetics_plan":           150000,
			"cosmetics_fact":           100000 + rng.Intn(80000),
			"additional_services_plan": 40,
			"additional_services_fact": 25 + rng.Intn(20),
		})
	}

	batches[submission.KindNewbieAdaptation] = []submission.Row{{
		"start_date":          day(20),
		"name":                "Нуржан",
		"haircut_practice":    "done",
		"service_standards":   "in_progress",
		"hygiene_sanitation":  "done",
		"additional_services": "not_started",
		"cosmetics_sales":     "not_started",
		"iclient_basics":      "in_progress",
	}}

	month := today.Format("2006-01")
	for _, m := range masters {
		batches[submission.KindMasterPlan] = append(batches[submission.KindMasterPlan], submission.Row{
			"month":                    month,
			"master_name":              m,
			"average_check_plan":       9000,
			"average_check_fact":       8500 + rng.Intn(1500),
			"additional_services_plan": 30,
			"additional_services_fact": 20 + rng.Intn(15),
			"sales_plan":               1200000,
			"sales_fact":               900000 + rng.Intn(400000),
			"salary_plan":              400000,
			"salary_fact":              300000 + rng.Intn(150000),
		})
	}

	for w := 0; w < 3; w++ {
		batches[submission.KindReview] = append(batches[submission.KindReview], submission.Row{
			"week":         fmt.Sprint(tracking.ISOWeek(today.AddDate(0, 0, -7*w))),
			"manager_name": "Асель Нурланова",
			"fact":         8 + rng.Intn(8),
		})
	}

	for _, kind := range submission.Kinds() {
		rows := batches[kind]
		if len(rows) == 0 {
			continue
		}
		if _, err := recordService.Submit(ctx, branch.ID, branch.Name, kind, rows); err != nil {
			logg.Fatal("seed records failed", zap.String("kind", string(kind)), zap.Error(err))
		}
	}

	logg.Info("demo data seeded",
		zap.String("branch", demoBranch),
		zap.String("password", demoPassword),
	)
}
