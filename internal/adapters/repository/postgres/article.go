package postgres

import (
	"blog/internal/adapters/database"
	"blog/internal/core/domain/article"
	"blog/internal/core/ports"
	pgrepo "blog/internal/platform/repository/postgres"
)

type Repository struct {
	*pgrepo.Repository[*article.Article, int64]
}

var _ ports.ArticleRepository = (*Repository)(nil)

func NewRepository(db *database.Lifecycle) *Repository {
	return &Repository{
		Repository: pgrepo.New[*article.Article, int64](connection(db), articleMapper{}),
	}
}

// connection avoids handing a typed nil *postgres.DB to the repository.
func connection(db *database.Lifecycle) pgrepo.ConnFunc {
	return func() pgrepo.Conn {
		if conn := db.Connection(); conn != nil {
			return conn
		}
		return nil
	}
}

type articleMapper struct{}

func (articleMapper) Table() string     { return "articles" }
func (articleMapper) KeyColumn() string { return "id" }
func (articleMapper) Columns() []string { return []string{"title", "content"} }

func (articleMapper) Values(a *article.Article) []any {
	return []any{a.Title, a.Content}
}

func (articleMapper) Scan(row pgrepo.Scanner) (*article.Article, error) {
	var a article.Article
	if err := row.Scan(&a.ID, &a.Title, &a.Content); err != nil {
		return nil, err
	}
	return &a, nil
}
