package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivenessHandler_Check(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "with version", version: "v1.2.3"},
		{name: "without version", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewLivenessHandler(tt.version)
			req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
			w := httptest.NewRecorder()

			testStart := time.Now()
			handler.Check(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var response LivenessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, StatusPass, response.Status)
			assert.Equal(t, tt.version, response.Version)
			assert.WithinDuration(t, testStart, response.Timestamp, 2*time.Second)
		})
	}
}

func TestLivenessHandler_Check_CancelledRequest(t *testing.T) {
	handler := NewLivenessHandler("v1.0.0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Check(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"context canceled"}`, w.Body.String())
}
