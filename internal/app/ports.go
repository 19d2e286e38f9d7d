package app

import (
	"context"

	"cybershield-service/internal/domain"
)

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Count(ctx context.Context) (int, error)
}

// ArticleStore persists educational articles.
type ArticleStore interface {
	List(ctx context.Context) ([]domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (domain.Article, error)
	Create(ctx context.Context, article *domain.Article) error
	Count(ctx context.Context) (int, error)
}

// QuizStore persists the quiz catalog.
type QuizStore interface {
	List(ctx context.Context) ([]domain.Quiz, error)
	GetByID(ctx context.Context, id string) (domain.Quiz, error)
	ListByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Quiz, error)
	Create(ctx context.Context, quiz *domain.Quiz) error
	Count(ctx context.Context) (int, error)
}

// AttemptStore persists completed quiz attempts. Attempts are append-only.
type AttemptStore interface {
	Create(ctx context.Context, attempt *domain.Attempt) error
	ListByUser(ctx context.Context, userID string) ([]domain.Attempt, error)
	RecentByUser(ctx context.Context, userID string, limit int) ([]domain.Attempt, error)
	Count(ctx context.Context) (int, error)
}

// IncidentStore persists incident reports.
type IncidentStore interface {
	Create(ctx context.Context, report *domain.IncidentReport) error
	ListByUser(ctx context.Context, userID string) ([]domain.IncidentReport, error)
	Count(ctx context.Context) (int, error)
}

// BadgeStore reads the badge catalog and per-user achievements.
type BadgeStore interface {
	ListBadges(ctx context.Context) ([]domain.Badge, error)
	CreateBadge(ctx context.Context, badge *domain.Badge) error
	AchievementsByUser(ctx context.Context, userID string) ([]domain.UserAchievement, error)
}

// SessionStore maps opaque session tokens to user IDs (Redis-backed in
// production, in-memory for tests).
type SessionStore interface {
	Create(ctx context.Context, token, userID string) error
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// LeaderboardSource produces unranked per-user aggregates; ranking and
// truncation happen in RankLeaderboard.
type LeaderboardSource interface {
	Aggregate(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

// LeaderboardCache holds a ranked snapshot for a short TTL between
// recomputations.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]domain.LeaderboardEntry, bool)
	Set(ctx context.Context, entries []domain.LeaderboardEntry)
}

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter sends a conversation to a chat-completion API and returns
// the assistant's reply.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
