package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cybershield-service/internal/app"
	"cybershield-service/internal/config"
	"cybershield-service/internal/infra/memory"
	"cybershield-service/internal/infra/openai"
	pg "cybershield-service/internal/infra/postgres"
	redisinfra "cybershield-service/internal/infra/redis"
	transport "cybershield-service/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the CyberShield API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	sessionTTL := config.TTLDuration(cfg.Session.TTL, 24*time.Hour)
	leaderboardTTL := config.TTLDuration(cfg.Leaderboard.TTL, 30*time.Second)

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var (
		users    app.UserStore
		articles app.ArticleStore
		quizzes  app.QuizStore
		attempts app.AttemptStore
		incs     app.IncidentStore
		badges   app.BadgeStore
		source   app.LeaderboardSource
	)

	if cfg.Postgres.URL != "" {
		db := pg.Open(cfg.Postgres.URL)
		defer db.Close()

		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()

		users = pg.NewUserStore(db)
		articles = pg.NewArticleStore(db)
		quizzes = pg.NewQuizStore(db)
		attempts = pg.NewAttemptStore(db)
		incs = pg.NewIncidentStore(db)
		badges = pg.NewBadgeStore(db)
		source = pg.NewLeaderboardSource(pool)
	} else {
		log.Printf("postgres not configured, using in-memory stores with sample content")
		userStore := memory.NewUserStore()
		attemptStore := memory.NewAttemptStore()
		badgeStore := memory.NewBadgeStore()
		articleStore := memory.NewArticleStore()
		quizStore := memory.NewQuizStore()

		users = userStore
		articles = articleStore
		quizzes = quizStore
		attempts = attemptStore
		incs = memory.NewIncidentStore()
		badges = badgeStore
		source = memory.NewLeaderboardSource(userStore, attemptStore, badgeStore)

		if err := seedContent(ctx, articleStore, quizStore, badgeStore); err != nil {
			return err
		}
	}

	var sessions app.SessionStore
	var cache app.LeaderboardCache
	if redisClient != nil {
		sessions = redisinfra.NewSessionStore(redisClient, sessionTTL)
		cache = redisinfra.NewLeaderboardCache(redisClient, leaderboardTTL)
		quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
		quizzes = redisinfra.NewQuizCache(redisClient, quizzes, quizTTL)
	} else {
		log.Printf("redis not configured, using in-memory sessions")
		sessions = memory.NewSessionStore(sessionTTL)
	}

	chatClient := openai.NewClient(cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.APIKey)

	api := transport.NewAPI(transport.Deps{
		Auth:         app.NewAuthService(users, sessions),
		Articles:     app.NewArticleService(articles),
		Quizzes:      app.NewQuizService(quizzes, attempts),
		Attempts:     app.NewAttemptService(attempts, quizzes),
		Leaderboard:  app.NewLeaderboardService(source, cache),
		Incidents:    app.NewIncidentService(incs),
		Achievements: app.NewAchievementService(badges),
		Admin:        app.NewAdminService(users, articles, quizzes, attempts, incs),
		Chat:         app.NewChatService(chatClient),
		SessionTTL:   sessionTTL,
	})

	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	handler := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(api.Routes())

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting cybershield service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
