package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"cybershield-service/internal/app"
	"cybershield-service/internal/config"
	pg "cybershield-service/internal/infra/postgres"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd loads the sample articles, quizzes and badges into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample content into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			if err := runMigrationsWithConfig(cmd.Context(), cfg); err != nil {
				return err
			}

			db := pg.Open(cfg.Postgres.URL)
			defer db.Close()

			return seedContent(cmd.Context(),
				pg.NewArticleStore(db), pg.NewQuizStore(db), pg.NewBadgeStore(db))
		},
	}
}

// seedContent inserts the sample catalog. Skipped entirely when articles
// already exist, so re-running is safe.
func seedContent(ctx context.Context, articles app.ArticleStore, quizzes app.QuizStore, badges app.BadgeStore) error {
	count, err := articles.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("content already present, skipping seed")
		return nil
	}

	now := time.Now().UTC()
	for _, article := range sampleArticles() {
		a := article
		a.ID = uuid.NewString()
		a.CreatedAt = now
		if err := articles.Create(ctx, &a); err != nil {
			return fmt.Errorf("seed article %q: %w", a.Slug, err)
		}
	}
	for _, quiz := range sampleQuizzes() {
		q := quiz
		q.ID = uuid.NewString()
		q.CreatedAt = now
		if err := quizzes.Create(ctx, &q); err != nil {
			return fmt.Errorf("seed quiz %q: %w", q.Title, err)
		}
	}
	for _, badge := range sampleBadges() {
		b := badge
		b.ID = uuid.NewString()
		b.CreatedAt = now
		if err := badges.CreateBadge(ctx, &b); err != nil {
			return fmt.Errorf("seed badge %q: %w", b.Name, err)
		}
	}
	log.Printf("sample content loaded")
	return nil
}
