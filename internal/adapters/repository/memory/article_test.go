package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/internal/core/domain/article"
	"blog/internal/platform/repository"
	"blog/internal/platform/repository/repositorytest"
)

func TestNewRepository(t *testing.T) {
	repo := NewRepository()

	require.NotNil(t, repo)
	require.NotNil(t, repo.Repository)
}

func TestRepository_Contract(t *testing.T) {
	repositorytest.Run(t, articleHarness(func(*testing.T) repository.Repository[*article.Article, int64] {
		return NewRepository()
	}))
}

func TestRepository_ReturnsCopies(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, &article.Article{Title: "Hello"})
	require.NoError(t, err)

	saved.Title = "changed after save"

	got, found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Hello", got.Title)
}

func articleHarness(newRepo func(*testing.T) repository.Repository[*article.Article, int64]) repositorytest.Harness[*article.Article, int64] {
	return repositorytest.Harness[*article.Article, int64]{
		New: newRepo,
		Make: func(i int) *article.Article {
			return &article.Article{Title: fmt.Sprintf("Article %d", i), Content: "body"}
		},
		Key: func(a *article.Article) int64 { return a.ID },
		WithKey: func(a *article.Article, id int64) *article.Article {
			a.ID = id
			return a
		},
		Mutate: func(a *article.Article) *article.Article {
			a.Title += " (revised)"
			a.Content = ""
			return a
		},
		FirstKey: 1,
		Missing:  404_404,
	}
}
