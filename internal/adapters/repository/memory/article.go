package memory

import (
	"blog/internal/core/domain/article"
	"blog/internal/core/ports"
	memoryPlatform "blog/internal/platform/repository/memory"
)

type Repository struct {
	*memoryPlatform.Repository[*article.Article, int64]
}

var _ ports.ArticleRepository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{
		Repository: memoryPlatform.NewSequential((*article.Article).Clone),
	}
}
