package ports

import (
	"blog/internal/core/domain/article"
	"blog/internal/platform/repository"
)

type ArticleRepository interface {
	repository.Repository[*article.Article, int64]
}
