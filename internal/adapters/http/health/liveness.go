package health

import (
	"net/http"
	"time"

	"blog/internal/adapters/http/response"
)

// LivenessHandler answers without touching the article store; a process that
// can serve HTTP is alive even when the store is down.
type LivenessHandler struct {
	version string
}

func NewLivenessHandler(version string) *LivenessHandler {
	return &LivenessHandler{
		version: version,
	}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, LivenessResponse{
		Status:    StatusPass,
		Timestamp: time.Now(),
		Version:   h.version,
	})
}
