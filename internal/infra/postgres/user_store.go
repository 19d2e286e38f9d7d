package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cybershield-service/internal/domain"

	"github.com/uptrace/bun"
)

// UserStore is the bun-backed implementation of app.UserStore.
type UserStore struct {
	db *bun.DB
}

func NewUserStore(db *bun.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	row := userToRow(user)
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	err := s.db.NewSelect().Model(&row).Where("u.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("select user: %w", err)
	}
	return row.toDomain(), nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	err := s.db.NewSelect().Model(&row).Where("u.email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("select user by email: %w", err)
	}
	return row.toDomain(), nil
}

func (s *UserStore) Count(ctx context.Context) (int, error) {
	return s.db.NewSelect().Model((*userRow)(nil)).Count(ctx)
}
