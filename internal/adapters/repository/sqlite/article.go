package sqlite

import (
	"blog/internal/adapters/database"
	"blog/internal/core/domain/article"
	"blog/internal/core/ports"
	"blog/internal/platform/repository/gormrepo"
)

// Repository keeps articles in the "articles" table named by gorm conventions.
type Repository struct {
	*gormrepo.Repository[article.Article, *article.Article, int64]
}

var _ ports.ArticleRepository = (*Repository)(nil)

func NewRepository(db *database.SQLiteLifecycle) *Repository {
	return &Repository{
		Repository: gormrepo.New[article.Article, *article.Article, int64](db.Session),
	}
}

// Models lists the gorm models whose tables the SQLite schema must contain.
func Models() []any {
	return []any{&article.Article{}}
}
