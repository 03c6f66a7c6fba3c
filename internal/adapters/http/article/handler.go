package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blog/internal/adapters/http/response"
	"blog/internal/core/domain/article"
	httpErrors "blog/internal/platform/http"
	"blog/internal/platform/logger"
	"blog/internal/platform/repository"
	"blog/internal/platform/validator"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	TotalCountHeader = "X-Total-Count"
)

type Handler struct {
	manager  Manager
	validate validator.Validator
}

func NewHandler(manager Manager, validate validator.Validator) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
	}
}

type ArticleRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content"`
}

type ArticleResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func toResponse(a *article.Article) ArticleResponse {
	return ArticleResponse{ID: a.ID, Title: a.Title, Content: a.Content}
}

func (h *Handler) mapDomainError(err error) error {
	switch {
	case errors.Is(err, article.ErrArticleNotFound):
		return httpErrors.NewNotFound("Article not found", err)
	case errors.Is(err, article.ErrInvalidTitle):
		return httpErrors.NewBadRequest("Invalid title", err)
	case errors.Is(err, article.ErrTitleTooLong):
		return httpErrors.NewBadRequest("Title is too long", err)
	}
	if httpErr := httpErrors.FromStoreError(err, "Article"); httpErr != nil {
		return httpErr
	}
	return err
}

func articleID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, httpErrors.NewBadRequest("Invalid article ID", err)
	}
	return id, nil
}

// pageOf reads ?page= (zero-based) and ?size=; size defaults to DefaultPageSize.
func pageOf(r *http.Request) (repository.Page, error) {
	page := repository.Page{Size: DefaultPageSize}
	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, httpErrors.NewBadRequest("Invalid page number", err)
		}
		page.Number = n
	}
	if raw := query.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxPageSize {
			return page, httpErrors.NewBadRequest("Invalid page size", err)
		}
		page.Size = n
	}

	return page, nil
}

// decode writes the 400 response itself and reports false when the body is unusable.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (ArticleRequest, bool) {
	contextLogger := logger.FromContext(r.Context())

	var req ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		response.RespondError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return req, false
	}

	if err := h.validate.Validate(req); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Validation failed", logger.Error(err))
			response.RespondJSON(w, http.StatusBadRequest, validationErr)
		} else {
			contextLogger.Error("Unexpected validation error", logger.Error(err))
			response.RespondError(w, http.StatusBadRequest, errors.New("invalid request data"))
		}
		return req, false
	}

	return req, true
}

func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) error {
	req, ok := h.decode(w, r)
	if !ok {
		return nil
	}

	created, err := h.manager.CreateArticle(r.Context(), req.Title, req.Content)
	if err != nil {
		return h.mapDomainError(err)
	}

	w.Header().Set("Location", "/api/articles/"+strconv.FormatInt(created.ID, 10))
	response.RespondJSON(w, http.StatusCreated, toResponse(created))
	return nil
}

func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) error {
	id, err := articleID(r)
	if err != nil {
		return err
	}

	found, err := h.manager.GetArticle(r.Context(), id)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, toResponse(found))
	return nil
}

func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) error {
	page, err := pageOf(r)
	if err != nil {
		return err
	}

	articles, total, err := h.manager.ListArticles(r.Context(), page)
	if err != nil {
		return h.mapDomainError(err)
	}

	body := make([]ArticleResponse, len(articles))
	for i, a := range articles {
		body[i] = toResponse(a)
	}

	w.Header().Set(TotalCountHeader, strconv.FormatInt(total, 10))
	response.RespondJSON(w, http.StatusOK, body)
	return nil
}

func (h *Handler) HeadArticle(w http.ResponseWriter, r *http.Request) error {
	id, err := articleID(r)
	if err != nil {
		return err
	}

	exists, err := h.manager.ArticleExists(r.Context(), id)
	if err != nil {
		return h.mapDomainError(err)
	}

	if !exists {
		response.RespondStatus(w, http.StatusNotFound)
		return nil
	}
	response.RespondStatus(w, http.StatusOK)
	return nil
}

func (h *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) error {
	id, err := articleID(r)
	if err != nil {
		return err
	}

	req, ok := h.decode(w, r)
	if !ok {
		return nil
	}

	updated, err := h.manager.UpdateArticle(r.Context(), id, req.Title, req.Content)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, toResponse(updated))
	return nil
}

func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) error {
	id, err := articleID(r)
	if err != nil {
		return err
	}

	if err := h.manager.DeleteArticle(r.Context(), id); err != nil {
		return h.mapDomainError(err)
	}

	response.RespondStatus(w, http.StatusNoContent)
	return nil
}
