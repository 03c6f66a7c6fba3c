package article

import (
	"context"

	"blog/internal/core/domain/article"
	"blog/internal/platform/repository"
)

type Manager interface {
	CreateArticle(ctx context.Context, title, content string) (*article.Article, error)
	GetArticle(ctx context.Context, id int64) (*article.Article, error)
	ListArticles(ctx context.Context, page repository.Page) ([]*article.Article, int64, error)
	UpdateArticle(ctx context.Context, id int64, title, content string) (*article.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
	ArticleExists(ctx context.Context, id int64) (bool, error)
}
