package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cybershield-service/internal/domain"

	"github.com/uptrace/bun"
)

// ArticleStore is the bun-backed implementation of app.ArticleStore.
type ArticleStore struct {
	db *bun.DB
}

func NewArticleStore(db *bun.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func (s *ArticleStore) List(ctx context.Context) ([]domain.Article, error) {
	var rows []articleRow
	if err := s.db.NewSelect().Model(&rows).Order("created_at DESC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	articles := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, row.toDomain())
	}
	return articles, nil
}

func (s *ArticleStore) GetBySlug(ctx context.Context, slug string) (domain.Article, error) {
	var row articleRow
	err := s.db.NewSelect().Model(&row).Where("ar.slug = ?", slug).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Article{}, domain.ErrArticleNotFound
		}
		return domain.Article{}, fmt.Errorf("select article: %w", err)
	}
	return row.toDomain(), nil
}

func (s *ArticleStore) Create(ctx context.Context, article *domain.Article) error {
	row := articleRow{
		ID:         article.ID,
		Title:      article.Title,
		Slug:       article.Slug,
		Category:   article.Category,
		Excerpt:    article.Excerpt,
		Content:    article.Content,
		ReadTime:   article.ReadTime,
		Difficulty: string(article.Difficulty),
		CreatedAt:  article.CreatedAt,
	}
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (s *ArticleStore) Count(ctx context.Context) (int, error) {
	return s.db.NewSelect().Model((*articleRow)(nil)).Count(ctx)
}
