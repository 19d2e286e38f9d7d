package postgres

import (
	"context"
	"fmt"

	"cybershield-service/internal/domain"

	"github.com/uptrace/bun"
)

// BadgeStore is the bun-backed implementation of app.BadgeStore.
type BadgeStore struct {
	db *bun.DB
}

func NewBadgeStore(db *bun.DB) *BadgeStore {
	return &BadgeStore{db: db}
}

func (s *BadgeStore) ListBadges(ctx context.Context) ([]domain.Badge, error) {
	var rows []badgeRow
	if err := s.db.NewSelect().Model(&rows).Order("created_at ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	badges := make([]domain.Badge, 0, len(rows))
	for _, row := range rows {
		badges = append(badges, row.toDomain())
	}
	return badges, nil
}

func (s *BadgeStore) CreateBadge(ctx context.Context, badge *domain.Badge) error {
	row := badgeRow{
		ID:          badge.ID,
		Name:        badge.Name,
		Description: badge.Description,
		Icon:        badge.Icon,
		Requirement: badge.Requirement,
		CreatedAt:   badge.CreatedAt,
	}
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return fmt.Errorf("insert badge: %w", err)
	}
	return nil
}

func (s *BadgeStore) AchievementsByUser(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	var rows []achievementRow
	err := s.db.NewSelect().Model(&rows).
		Where("ua.user_id = ?", userID).
		Order("earned_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	achievements := make([]domain.UserAchievement, 0, len(rows))
	for _, row := range rows {
		achievements = append(achievements, row.toDomain())
	}
	return achievements, nil
}
