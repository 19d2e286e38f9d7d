package domain

import (
	"encoding/json"
	"time"
)

// Difficulty is a tier shared by quizzes and derived user performance.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the three known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// User is an account on the platform. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	PasswordHash    string    `json:"-"`
	ProfileImageURL string    `json:"profileImageUrl"`
	IsAdmin         bool      `json:"isAdmin"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Article is a piece of educational content.
type Article struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Category   string     `json:"category"`
	Excerpt    string     `json:"excerpt"`
	Content    string     `json:"content"`
	ReadTime   int        `json:"readTime"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Question is a single multiple-choice question. CorrectAnswer is a zero-based
// index into Options.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Valid reports whether the question has at least two options and a
// correct-answer index inside them.
func (q Question) Valid() bool {
	return len(q.Options) >= 2 && q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
}

// Quiz is an immutable ordered set of questions at one difficulty tier.
type Quiz struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Questions  []Question `json:"questions"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// DecodeQuestions parses a raw questions payload. A payload that is not a
// JSON array yields nil rather than an error, so a quiz with broken content
// degrades to "no quiz available" instead of a crash.
func DecodeQuestions(raw []byte) []Question {
	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil
	}
	return questions
}

// Attempt is one completed run of a quiz. Score is an integer percentage and
// Answers holds one chosen option index per question, in question order.
// Attempts are append-only: written once at submission, never mutated.
type Attempt struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	QuizID      string    `json:"quizId"`
	Score       int       `json:"score"`
	Answers     []int     `json:"answers"`
	CompletedAt time.Time `json:"completedAt"`
}

// IncidentReport is a user-filed report of a cyber incident.
type IncidentReport struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"userId"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	IncidentType          string    `json:"incidentType"`
	AffectedAreas         string    `json:"affectedAreas"`
	Severity              string    `json:"severity"`
	ReportedToAuthorities bool      `json:"reportedToAuthorities"`
	Status                string    `json:"status"`
	Attachments           []string  `json:"attachments"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// Badge is a static catalog entry describing an earnable achievement.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Requirement string    `json:"requirement"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserAchievement records that a user earned a badge.
type UserAchievement struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	BadgeID  string    `json:"badgeId"`
	EarnedAt time.Time `json:"earnedAt"`
}

// LeaderboardEntry is one ranked row of the global leaderboard.
type LeaderboardEntry struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	Email        string `json:"email"`
	TotalScore   int    `json:"totalScore"`
	QuizCount    int    `json:"quizCount"`
	AverageScore int    `json:"averageScore"`
	Badges       int    `json:"badges"`
}
