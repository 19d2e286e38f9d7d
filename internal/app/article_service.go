package app

import (
	"context"

	"cybershield-service/internal/domain"
)

// ArticleService reads the educational content catalog.
type ArticleService struct {
	articles ArticleStore
}

func NewArticleService(articles ArticleStore) *ArticleService {
	return &ArticleService{articles: articles}
}

// List returns all articles, newest first.
func (s *ArticleService) List(ctx context.Context) ([]domain.Article, error) {
	return s.articles.List(ctx)
}

// GetBySlug returns one article or ErrArticleNotFound.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (domain.Article, error) {
	return s.articles.GetBySlug(ctx, slug)
}
