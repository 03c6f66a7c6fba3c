package http

import (
	"blog/internal/platform/logger"
	"errors"
	"net/http"

	httpErrors "blog/internal/platform/http"

	"blog/internal/adapters/http/response"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler renders the error returned by next. Typed HTTP errors keep their
// status; anything else becomes a 500 with the cause logged.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		contextLogger := logger.FromContext(r.Context()).With(
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
		)

		var httpErr *httpErrors.Error
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode >= http.StatusInternalServerError {
				contextLogger.Warn("Request failed",
					logger.Int("status", httpErr.StatusCode),
					logger.Error(httpErr.Unwrap()))
			}
			if r.Method == http.MethodHead {
				response.RespondStatus(w, httpErr.StatusCode)
				return
			}
			response.RespondError(w, httpErr.StatusCode, httpErr)
			return
		}

		contextLogger.Error("Unexpected server error",
			logger.String("remote_addr", r.RemoteAddr),
			logger.Error(err))
		response.RespondError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
