package article

import (
	"context"

	"blog/internal/core/domain/article"
	"blog/internal/core/ports"
	"blog/internal/platform/logger"
	"blog/internal/platform/repository"
)

type Usecase struct {
	repo ports.ArticleRepository
}

func NewUsecase(repo ports.ArticleRepository) *Usecase {
	return &Usecase{repo: repo}
}

func (uc *Usecase) CreateArticle(ctx context.Context, title, content string) (*article.Article, error) {
	log := logger.FromContext(ctx)
	log.Debug("Creating article", logger.String("title", title))

	a, err := article.NewArticle(title, content)
	if err != nil {
		log.Warn("Invalid article data provided", logger.Error(err))
		return nil, err
	}

	saved, err := uc.repo.Save(ctx, a)
	if err != nil {
		return nil, err
	}

	log.Debug("Article created", logger.Int64("article_id", saved.ID))
	return saved, nil
}

func (uc *Usecase) GetArticle(ctx context.Context, id int64) (*article.Article, error) {
	logger.FromContext(ctx).Debug("Getting article", logger.Int64("article_id", id))

	a, found, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, article.ErrArticleNotFound
	}

	return a, nil
}

// ListArticles returns one page of articles in id order and the total number of articles.
func (uc *Usecase) ListArticles(ctx context.Context, page repository.Page) ([]*article.Article, int64, error) {
	logger.FromContext(ctx).Debug("Listing articles",
		logger.Int("page", page.Number),
		logger.Int("size", page.Size),
	)

	articles, err := repository.Collect(uc.repo.FindAll(ctx, page))
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	if articles == nil {
		articles = []*article.Article{}
	}
	return articles, total, nil
}

func (uc *Usecase) UpdateArticle(ctx context.Context, id int64, title, content string) (*article.Article, error) {
	log := logger.FromContext(ctx)
	log.Debug("Updating article", logger.Int64("article_id", id))

	a, found, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, article.ErrArticleNotFound
	}

	if err := a.Update(title, content); err != nil {
		log.Warn("Invalid article data provided", logger.Int64("article_id", id), logger.Error(err))
		return nil, err
	}

	saved, err := uc.repo.Save(ctx, a)
	if err != nil {
		return nil, err
	}

	// A row deleted after the lookup makes Save insert under a fresh key.
	if saved.ID != id {
		log.Warn("Article deleted during update",
			logger.Int64("article_id", id),
			logger.Int64("inserted_id", saved.ID),
		)
		if err := uc.repo.DeleteByID(ctx, saved.ID); err != nil {
			return nil, err
		}
		return nil, article.ErrArticleNotFound
	}

	return saved, nil
}

// DeleteArticle succeeds whether or not the article exists.
func (uc *Usecase) DeleteArticle(ctx context.Context, id int64) error {
	logger.FromContext(ctx).Debug("Deleting article", logger.Int64("article_id", id))

	return uc.repo.DeleteByID(ctx, id)
}

func (uc *Usecase) ArticleExists(ctx context.Context, id int64) (bool, error) {
	return uc.repo.ExistsByID(ctx, id)
}
