package app

import "context"

// AdminStats summarizes platform activity for the admin dashboard.
type AdminStats struct {
	Users     int `json:"users"`
	Articles  int `json:"articles"`
	Quizzes   int `json:"quizzes"`
	Attempts  int `json:"attempts"`
	Incidents int `json:"incidents"`
}

// AdminService computes counts over the main tables.
type AdminService struct {
	users     UserStore
	articles  ArticleStore
	quizzes   QuizStore
	attempts  AttemptStore
	incidents IncidentStore
}

func NewAdminService(users UserStore, articles ArticleStore, quizzes QuizStore, attempts AttemptStore, incidents IncidentStore) *AdminService {
	return &AdminService{
		users:     users,
		articles:  articles,
		quizzes:   quizzes,
		attempts:  attempts,
		incidents: incidents,
	}
}

// Stats gathers row counts; the first failing count aborts.
func (s *AdminService) Stats(ctx context.Context) (AdminStats, error) {
	var stats AdminStats
	var err error

	if stats.Users, err = s.users.Count(ctx); err != nil {
		return AdminStats{}, err
	}
	if stats.Articles, err = s.articles.Count(ctx); err != nil {
		return AdminStats{}, err
	}
	if stats.Quizzes, err = s.quizzes.Count(ctx); err != nil {
		return AdminStats{}, err
	}
	if stats.Attempts, err = s.attempts.Count(ctx); err != nil {
		return AdminStats{}, err
	}
	if stats.Incidents, err = s.incidents.Count(ctx); err != nil {
		return AdminStats{}, err
	}
	return stats, nil
}
