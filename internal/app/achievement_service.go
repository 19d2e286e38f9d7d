package app

import (
	"context"
	"time"

	"cybershield-service/internal/domain"
)

// EarnedBadge joins a badge with when the user earned it.
type EarnedBadge struct {
	Badge    domain.Badge `json:"badge"`
	EarnedAt time.Time    `json:"earnedAt"`
}

// AchievementService reads badges earned by a user.
type AchievementService struct {
	badges BadgeStore
}

func NewAchievementService(badges BadgeStore) *AchievementService {
	return &AchievementService{badges: badges}
}

// ListForUser returns the caller's earned badges with timestamps. Badges
// whose catalog entry has been removed are skipped.
func (s *AchievementService) ListForUser(ctx context.Context, userID string) ([]EarnedBadge, error) {
	achievements, err := s.badges.AchievementsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.badges.ListBadges(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Badge, len(catalog))
	for _, badge := range catalog {
		byID[badge.ID] = badge
	}

	earned := make([]EarnedBadge, 0, len(achievements))
	for _, a := range achievements {
		badge, ok := byID[a.BadgeID]
		if !ok {
			continue
		}
		earned = append(earned, EarnedBadge{Badge: badge, EarnedAt: a.EarnedAt})
	}
	return earned, nil
}
