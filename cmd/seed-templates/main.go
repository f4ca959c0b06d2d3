package main

import (
	"context"
	"fmt"
	"time"

	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/database"
	"github.com/quizforge/quizforge-backend/internal/logger"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/quizforge/quizforge-backend/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	templateRepo := repository.NewTemplateRepository(pool)

	fmt.Println("=== Seeding Example Templates ===")

	seeded := 0
	for _, t := range service.ExampleTemplates {
		// Skip templates that were already seeded on a previous run.
		if _, err := templateRepo.GetByID(ctx, t.ID); err == nil {
			fmt.Printf("Skipping %s (already present)\n", t.ID)
			continue
		}

		if err := templateRepo.Create(ctx, &t); err != nil {
			log.Fatal().Err(err).Str("template_id", t.ID).Msg("Failed to seed template")
		}
		fmt.Printf("Seeded %s: %s\n", t.ID, t.Name)
		seeded++
	}

	fmt.Printf("\nDone. %d template(s) seeded.\n", seeded)
}
