package postgres

import (
	"encoding/json"
	"time"

	"cybershield-service/internal/domain"

	"github.com/uptrace/bun"
)

type userRow struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID              string    `bun:"id,pk"`
	Email           string    `bun:"email"`
	FirstName       string    `bun:"first_name"`
	LastName        string    `bun:"last_name"`
	PasswordHash    string    `bun:"password_hash"`
	ProfileImageURL string    `bun:"profile_image_url"`
	IsAdmin         bool      `bun:"is_admin"`
	CreatedAt       time.Time `bun:"created_at"`
	UpdatedAt       time.Time `bun:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:              r.ID,
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		PasswordHash:    r.PasswordHash,
		ProfileImageURL: r.ProfileImageURL,
		IsAdmin:         r.IsAdmin,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func userToRow(u *domain.User) userRow {
	return userRow{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		PasswordHash:    u.PasswordHash,
		ProfileImageURL: u.ProfileImageURL,
		IsAdmin:         u.IsAdmin,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

type articleRow struct {
	bun.BaseModel `bun:"table:articles,alias:ar"`

	ID         string    `bun:"id,pk"`
	Title      string    `bun:"title"`
	Slug       string    `bun:"slug"`
	Category   string    `bun:"category"`
	Excerpt    string    `bun:"excerpt"`
	Content    string    `bun:"content"`
	ReadTime   int       `bun:"read_time"`
	Difficulty string    `bun:"difficulty"`
	CreatedAt  time.Time `bun:"created_at"`
}

func (r articleRow) toDomain() domain.Article {
	return domain.Article{
		ID:         r.ID,
		Title:      r.Title,
		Slug:       r.Slug,
		Category:   r.Category,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		ReadTime:   r.ReadTime,
		Difficulty: domain.Difficulty(r.Difficulty),
		CreatedAt:  r.CreatedAt,
	}
}

type quizRow struct {
	bun.BaseModel `bun:"table:quizzes,alias:q"`

	ID         string          `bun:"id,pk"`
	Title      string          `bun:"title"`
	Category   string          `bun:"category"`
	Difficulty string          `bun:"difficulty"`
	Questions  json.RawMessage `bun:"questions,type:jsonb"`
	CreatedAt  time.Time       `bun:"created_at"`
}

func (r quizRow) toDomain() domain.Quiz {
	return domain.Quiz{
		ID:         r.ID,
		Title:      r.Title,
		Category:   r.Category,
		Difficulty: domain.Difficulty(r.Difficulty),
		Questions:  domain.DecodeQuestions(r.Questions),
		CreatedAt:  r.CreatedAt,
	}
}

type attemptRow struct {
	bun.BaseModel `bun:"table:quiz_attempts,alias:qa"`

	ID          string          `bun:"id,pk"`
	UserID      string          `bun:"user_id"`
	QuizID      string          `bun:"quiz_id"`
	Score       int             `bun:"score"`
	Answers     json.RawMessage `bun:"answers,type:jsonb"`
	CompletedAt time.Time       `bun:"completed_at"`
}

func (r attemptRow) toDomain() domain.Attempt {
	var answers []int
	_ = json.Unmarshal(r.Answers, &answers)
	return domain.Attempt{
		ID:          r.ID,
		UserID:      r.UserID,
		QuizID:      r.QuizID,
		Score:       r.Score,
		Answers:     answers,
		CompletedAt: r.CompletedAt,
	}
}

type incidentRow struct {
	bun.BaseModel `bun:"table:incident_reports,alias:ir"`

	ID                    string          `bun:"id,pk"`
	UserID                string          `bun:"user_id"`
	Title                 string          `bun:"title"`
	Description           string          `bun:"description"`
	IncidentType          string          `bun:"incident_type"`
	AffectedAreas         string          `bun:"affected_areas"`
	Severity              string          `bun:"severity"`
	ReportedToAuthorities bool            `bun:"reported_to_authorities"`
	Status                string          `bun:"status"`
	Attachments           json.RawMessage `bun:"attachments,type:jsonb,nullzero"`
	CreatedAt             time.Time       `bun:"created_at"`
	UpdatedAt             time.Time       `bun:"updated_at"`
}

func (r incidentRow) toDomain() domain.IncidentReport {
	var attachments []string
	_ = json.Unmarshal(r.Attachments, &attachments)
	return domain.IncidentReport{
		ID:                    r.ID,
		UserID:                r.UserID,
		Title:                 r.Title,
		Description:           r.Description,
		IncidentType:          r.IncidentType,
		AffectedAreas:         r.AffectedAreas,
		Severity:              r.Severity,
		ReportedToAuthorities: r.ReportedToAuthorities,
		Status:                r.Status,
		Attachments:           attachments,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

type badgeRow struct {
	bun.BaseModel `bun:"table:badges,alias:b"`

	ID          string    `bun:"id,pk"`
	Name        string    `bun:"name"`
	Description string    `bun:"description"`
	Icon        string    `bun:"icon"`
	Requirement string    `bun:"requirement"`
	CreatedAt   time.Time `bun:"created_at"`
}

func (r badgeRow) toDomain() domain.Badge {
	return domain.Badge{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		Requirement: r.Requirement,
		CreatedAt:   r.CreatedAt,
	}
}

type achievementRow struct {
	bun.BaseModel `bun:"table:user_achievements,alias:ua"`

	ID       string    `bun:"id,pk"`
	UserID   string    `bun:"user_id"`
	BadgeID  string    `bun:"badge_id"`
	EarnedAt time.Time `bun:"earned_at"`
}

func (r achievementRow) toDomain() domain.UserAchievement {
	return domain.UserAchievement{
		ID:       r.ID,
		UserID:   r.UserID,
		BadgeID:  r.BadgeID,
		EarnedAt: r.EarnedAt,
	}
}
