package memory

import (
	"context"
	"sort"
	"sync"

	"cybershield-service/internal/domain"
)

// BadgeStore is a map-backed implementation of app.BadgeStore.
type BadgeStore struct {
	mu           sync.RWMutex
	badges       map[string]domain.Badge
	achievements []domain.UserAchievement
}

func NewBadgeStore() *BadgeStore {
	return &BadgeStore{badges: make(map[string]domain.Badge)}
}

func (s *BadgeStore) ListBadges(_ context.Context) ([]domain.Badge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	badges := make([]domain.Badge, 0, len(s.badges))
	for _, badge := range s.badges {
		badges = append(badges, badge)
	}
	sort.Slice(badges, func(i, j int) bool {
		return badges[i].CreatedAt.Before(badges[j].CreatedAt)
	})
	return badges, nil
}

func (s *BadgeStore) CreateBadge(_ context.Context, badge *domain.Badge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.badges[badge.ID] = *badge
	return nil
}

func (s *BadgeStore) AchievementsByUser(_ context.Context, userID string) ([]domain.UserAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var earned []domain.UserAchievement
	for _, a := range s.achievements {
		if a.UserID == userID {
			earned = append(earned, a)
		}
	}
	return earned, nil
}

// Award records an achievement directly; used by tests and seed data.
func (s *BadgeStore) Award(achievement domain.UserAchievement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.achievements = append(s.achievements, achievement)
}

// CountByUser returns how many badges each user has earned.
func (s *BadgeStore) CountByUser() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, a := range s.achievements {
		counts[a.UserID]++
	}
	return counts
}
