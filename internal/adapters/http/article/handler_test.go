package article

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"blog/internal/adapters/http/article/mocks"
	"blog/internal/adapters/http/response"
	"blog/internal/core/domain/article"
	httpErrors "blog/internal/platform/http"
	"blog/internal/platform/logger"
	"blog/internal/platform/repository"
	"blog/internal/platform/validator"
	validatorMocks "blog/internal/platform/validator/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockManager   *mocks.MockManager
	mockValidator *validatorMocks.MockValidator
	handler       *Handler
	router        *chi.Mux
}

func respond(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		var httpErr *httpErrors.Error
		if errors.As(err, &httpErr) {
			response.RespondError(w, httpErr.StatusCode, httpErr)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, err)
	}
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.mockManager = mocks.NewMockManager(suite.T())
	suite.mockValidator = validatorMocks.NewMockValidator(suite.T())
	suite.handler = NewHandler(suite.mockManager, suite.mockValidator)

	suite.router = chi.NewRouter()
	suite.router.Post("/articles", respond(suite.handler.CreateArticle))
	suite.router.Get("/articles", respond(suite.handler.ListArticles))
	suite.router.Get("/articles/{id}", respond(suite.handler.GetArticle))
	suite.router.Head("/articles/{id}", respond(suite.handler.HeadArticle))
	suite.router.Put("/articles/{id}", respond(suite.handler.UpdateArticle))
	suite.router.Delete("/articles/{id}", respond(suite.handler.DeleteArticle))
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) serve(method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req = req.WithContext(logger.WithLogger(req.Context(), logger.NewNop()))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) jsonBody(v interface{}) []byte {
	body, err := json.Marshal(v)
	require.NoError(suite.T(), err)
	return body
}

func (suite *HandlerTestSuite) TestCreateArticle_Success() {
	request := ArticleRequest{Title: "Hello", Content: "First post"}

	suite.mockValidator.EXPECT().Validate(request).Return(nil).Once()
	suite.mockManager.EXPECT().
		CreateArticle(mock.Anything, "Hello", "First post").
		Return(&article.Article{ID: 1, Title: "Hello", Content: "First post"}, nil).
		Once()

	w := suite.serve(http.MethodPost, "/articles", suite.jsonBody(request))

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Equal(suite.T(), "/api/articles/1", w.Header().Get("Location"))
	assert.JSONEq(suite.T(), `{"id":1,"title":"Hello","content":"First post"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateArticle_InvalidJSON() {
	w := suite.serve(http.MethodPost, "/articles", []byte("invalid json"))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error":"invalid request payload"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateArticle_ValidationError() {
	request := ArticleRequest{Title: ""}
	validationErr := validator.ValidationError{
		Errors: []validator.FieldError{{Field: "title", Message: "This field is required"}},
	}

	suite.mockValidator.EXPECT().Validate(request).Return(validationErr).Once()

	w := suite.serve(http.MethodPost, "/articles", suite.jsonBody(request))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "This field is required")
}

func (suite *HandlerTestSuite) TestCreateArticle_UnexpectedValidationError() {
	request := ArticleRequest{Title: "Hello"}

	suite.mockValidator.EXPECT().Validate(request).Return(errors.New("validator exploded")).Once()

	w := suite.serve(http.MethodPost, "/articles", suite.jsonBody(request))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error":"invalid request data"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateArticle_DomainErrors() {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{name: "blank title", err: article.ErrInvalidTitle, status: http.StatusBadRequest, body: `{"error":"Invalid title"}`},
		{name: "long title", err: article.ErrTitleTooLong, status: http.StatusBadRequest, body: `{"error":"Title is too long"}`},
		{
			name:   "constraint",
			err:    &repository.ConstraintViolationError{Constraint: "articles_pkey", Err: errors.New("duplicate key")},
			status: http.StatusConflict,
			body:   `{"error":"Article conflicts with stored data"}`,
		},
		{
			name:   "store unavailable",
			err:    repository.Unavailable("save articles", errors.New("connection refused")),
			status: http.StatusServiceUnavailable,
			body:   `{"error":"Article storage is unavailable"}`,
		},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, body: `{"error":"boom"}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			request := ArticleRequest{Title: "  "}
			suite.mockValidator.EXPECT().Validate(request).Return(nil).Once()
			suite.mockManager.EXPECT().CreateArticle(mock.Anything, "  ", "").Return(nil, tt.err).Once()

			w := suite.serve(http.MethodPost, "/articles", suite.jsonBody(request))

			assert.Equal(suite.T(), tt.status, w.Code)
			assert.JSONEq(suite.T(), tt.body, w.Body.String())
		})
	}
}

func (suite *HandlerTestSuite) TestGetArticle_Success() {
	suite.mockManager.EXPECT().
		GetArticle(mock.Anything, int64(1)).
		Return(&article.Article{ID: 1, Title: "Hello", Content: ""}, nil).
		Once()

	w := suite.serve(http.MethodGet, "/articles/1", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"id":1,"title":"Hello","content":""}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetArticle_NotFound() {
	suite.mockManager.EXPECT().
		GetArticle(mock.Anything, int64(404)).
		Return(nil, article.ErrArticleNotFound).
		Once()

	w := suite.serve(http.MethodGet, "/articles/404", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Article not found"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestInvalidID() {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := suite.serve(method, "/articles/abc", nil)

		assert.Equal(suite.T(), http.StatusBadRequest, w.Code, method)
		assert.JSONEq(suite.T(), `{"error":"Invalid article ID"}`, w.Body.String(), method)
	}

	w := suite.serve(http.MethodHead, "/articles/abc", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListArticles_DefaultPage() {
	suite.mockManager.EXPECT().
		ListArticles(mock.Anything, repository.Page{Number: 0, Size: DefaultPageSize}).
		Return([]*article.Article{{ID: 1, Title: "a"}, {ID: 2, Title: "b", Content: "x"}}, int64(2), nil).
		Once()

	w := suite.serve(http.MethodGet, "/articles", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "2", w.Header().Get(TotalCountHeader))
	assert.JSONEq(suite.T(),
		`[{"id":1,"title":"a","content":""},{"id":2,"title":"b","content":"x"}]`,
		w.Body.String())
}

func (suite *HandlerTestSuite) TestListArticles_Empty() {
	suite.mockManager.EXPECT().
		ListArticles(mock.Anything, repository.Page{Number: 3, Size: 5}).
		Return([]*article.Article{}, int64(0), nil).
		Once()

	w := suite.serve(http.MethodGet, "/articles?page=3&size=5", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "0", w.Header().Get(TotalCountHeader))
	assert.JSONEq(suite.T(), `[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestListArticles_InvalidPaging() {
	for _, query := range []string{"page=-1", "page=x", "size=0", "size=101", "size=x"} {
		w := suite.serve(http.MethodGet, "/articles?"+query, nil)

		assert.Equal(suite.T(), http.StatusBadRequest, w.Code, query)
	}
}

func (suite *HandlerTestSuite) TestListArticles_StoreUnavailable() {
	suite.mockManager.EXPECT().
		ListArticles(mock.Anything, mock.Anything).
		Return(nil, int64(0), repository.Unavailable("list articles", nil)).
		Once()

	w := suite.serve(http.MethodGet, "/articles", nil)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlerTestSuite) TestHeadArticle() {
	suite.mockManager.EXPECT().ArticleExists(mock.Anything, int64(1)).Return(true, nil).Once()
	suite.mockManager.EXPECT().ArticleExists(mock.Anything, int64(2)).Return(false, nil).Once()

	w := suite.serve(http.MethodHead, "/articles/1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Empty(suite.T(), w.Body.String())

	w = suite.serve(http.MethodHead, "/articles/2", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Empty(suite.T(), w.Body.String())
}

func (suite *HandlerTestSuite) TestUpdateArticle_Success() {
	request := ArticleRequest{Title: "New", Content: "body"}

	suite.mockValidator.EXPECT().Validate(request).Return(nil).Once()
	suite.mockManager.EXPECT().
		UpdateArticle(mock.Anything, int64(7), "New", "body").
		Return(&article.Article{ID: 7, Title: "New", Content: "body"}, nil).
		Once()

	w := suite.serve(http.MethodPut, "/articles/7", suite.jsonBody(request))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"id":7,"title":"New","content":"body"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestUpdateArticle_NotFound() {
	request := ArticleRequest{Title: "New"}

	suite.mockValidator.EXPECT().Validate(request).Return(nil).Once()
	suite.mockManager.EXPECT().
		UpdateArticle(mock.Anything, int64(7), "New", "").
		Return(nil, article.ErrArticleNotFound).
		Once()

	w := suite.serve(http.MethodPut, "/articles/7", suite.jsonBody(request))

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateArticle_InvalidJSON() {
	w := suite.serve(http.MethodPut, "/articles/7", []byte(strings.Repeat("{", 3)))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteArticle_AlwaysNoContent() {
	suite.mockManager.EXPECT().DeleteArticle(mock.Anything, int64(5)).Return(nil).Twice()

	for range 2 {
		w := suite.serve(http.MethodDelete, "/articles/5", nil)

		assert.Equal(suite.T(), http.StatusNoContent, w.Code)
		assert.Empty(suite.T(), w.Body.String())
	}
}

func (suite *HandlerTestSuite) TestDeleteArticle_StoreUnavailable() {
	suite.mockManager.EXPECT().
		DeleteArticle(mock.Anything, int64(5)).
		Return(repository.Unavailable("delete articles", errors.New("connection reset"))).
		Once()

	w := suite.serve(http.MethodDelete, "/articles/5", nil)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

func TestPageOf(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    repository.Page
		wantErr bool
	}{
		{name: "defaults", query: "", want: repository.Page{Size: DefaultPageSize}},
		{name: "explicit", query: "page=2&size=10", want: repository.Page{Number: 2, Size: 10}},
		{name: "huge_page_number", query: "page=92233720368547759&size=100", want: repository.Page{Number: 92233720368547759, Size: 100}},
		{name: "negative_page", query: "page=-1", wantErr: true},
		{name: "page_overflows_int", query: "page=9223372036854775808", wantErr: true},
		{name: "size_above_max", query: "size=101", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/articles?"+tt.query, nil)

			page, err := pageOf(r)

			if tt.wantErr {
				var httpErr *httpErrors.Error
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
			assert.GreaterOrEqual(t, page.Offset(), 0)
		})
	}
}
