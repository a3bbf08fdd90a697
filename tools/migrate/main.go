package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/orgball2608/fb-post-importer/internal/migrations"
	"github.com/orgball2608/fb-post-importer/pkg/config"
	"github.com/pressly/goose/v3"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|status|reset]")
	}

	command := os.Args[1]

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.LedgerEnabled() {
		log.Fatal("POSTGRES_HOST is not set, nothing to migrate")
	}

	provider, db, err := migrations.NewProvider(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		printResults(results)
		fmt.Println("Migrations applied successfully")
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("Failed to rollback migration: %v", err)
		}
		printResults([]*goose.MigrationResult{result})
		fmt.Println("Migration rollback successful")
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%d\t%s\n", s.Source.Version, applied)
		}
	case "reset":
		results, err := provider.DownTo(ctx, 0)
		if err != nil {
			log.Fatalf("Failed to reset migrations: %v", err)
		}
		printResults(results)
		fmt.Println("All migrations have been rolled back")
	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func printResults(results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil {
			continue
		}
		fmt.Println(r.String())
	}
}
