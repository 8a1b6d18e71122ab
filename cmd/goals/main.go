package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"barbercrm/internal/config"
	"barbercrm/internal/database"
	"barbercrm/internal/repository"
	"barbercrm/internal/tracking"

	flag "github.com/spf13/pflag"
)

type goalRow struct {
	Metric string `json:"metric"`
	Label  string `json:"label"`
	Goal   int    `json:"goal"`
}

type branchGoals struct {
	Branch    string         `json:"branch"`
	Overrides map[string]int `json:"overrides,omitempty"`
	Goals     []goalRow      `json:"goals"`
}

func main() {
	branchName := flag.StringP("branch", "b", "", "print the effective goals of one branch")
	all := flag.Bool("all", false, "print the effective goals of every branch")
	unlock := flag.Bool("unlock-expired", false, "clear login lockouts that have ended")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	base, err := tracking.NewRegistry(cfg.GoalOverrides)
	if err != nil {
		log.Fatalf("goal overrides: %v", err)
	}

	if *branchName == "" && !*all && !*unlock {
		printJSON(branchGoals{Branch: "*", Overrides: cfg.GoalOverrides, Goals: rows(base)})
		return
	}

	db, err := database.Connect(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	branches := repository.NewBranchRepository(db)

	if *unlock {
		n, err := branches.UnlockExpired(ctx, time.Now().UTC())
		if err != nil {
			log.Fatalf("unlock failed: %v", err)
		}
		log.Printf("login lockouts cleared: %d", n)
	}

	switch {
	case *branchName != "":
		b, err := branches.GetByName(ctx, *branchName)
		if err != nil {
			log.Fatalf("branch %q: %v", *branchName, err)
		}
		printJSON(effective(base, b.Name, b.GoalOverrides))
	case *all:
		list, err := branches.List(ctx)
		if err != nil {
			log.Fatalf("list branches: %v", err)
		}
		out := make([]branchGoals, 0, len(list))
		for _, b := range list {
			out = append(out, effective(base, b.Name, b.GoalOverrides))
		}
		printJSON(out)
	}
}

func effective(base *tracking.Registry, name string, overrides map[string]int) branchGoals {
	reg, err := base.WithOverrides(overrides)
	if err != nil {
		log.Printf("branch %q has invalid overrides, showing configured goals: %v", name, err)
		reg = base
	}
	return branchGoals{Branch: name, Overrides: overrides, Goals: rows(reg)}
}

func rows(reg *tracking.Registry) []goalRow {
	out := make([]goalRow, 0, len(reg.Keys()))
	for _, k := range reg.Keys() {
		g, _ := reg.GoalFor(k)
		out = append(out, goalRow{Metric: k, Label: tracking.Label(k), Goal: g})
	}
	return out
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatal(err)
	}
}
