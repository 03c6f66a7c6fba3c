package health

import (
	"blog/internal/platform/health"
	"blog/internal/platform/logger"
	"context"
	"net/http"
	"sort"
	"time"

	"blog/internal/adapters/http/response"
)

const (
	readinessTimeout = 5 * time.Second

	// Every registered checker guards the article store.
	componentType = "datastore"
)

type ReadinessHandler struct {
	version       string
	healthManager health.ManagerInterface
}

func NewReadinessHandler(version string, healthManager health.ManagerInterface) *ReadinessHandler {
	return &ReadinessHandler{
		version:       version,
		healthManager: healthManager,
	}
}

func statusOf(result health.CheckResult) Status {
	switch result.Status {
	case health.StatusHealthy:
		return StatusPass
	case health.StatusUnhealthy:
		return StatusFail
	default:
		return StatusWarn
	}
}

func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	log := logger.FromContext(ctx)
	healthResults := h.healthManager.CheckAll(ctx)

	names := make([]string, 0, len(healthResults))
	for name := range healthResults {
		names = append(names, name)
	}
	sort.Strings(names)

	overallStatus := StatusPass
	checks := make(map[string][]CheckDetail, len(names))
	var notes []string
	now := time.Now()

	for _, name := range names {
		result := healthResults[name]
		status := statusOf(result)

		switch {
		case status == StatusFail:
			overallStatus = StatusFail
			notes = append(notes, "Dependency "+name+" is unavailable")
		case status == StatusWarn && overallStatus == StatusPass:
			overallStatus = StatusWarn
		}

		output := result.Message
		if result.Error != "" {
			output = result.Error
		}

		checks[name] = []CheckDetail{{
			ComponentId:   name,
			ComponentType: componentType,
			ObservedValue: float64(result.Latency) / float64(time.Millisecond),
			ObservedUnit:  "ms",
			Status:        status,
			Time:          now,
			Output:        output,
		}}
	}

	statusCode := http.StatusOK
	if overallStatus == StatusFail {
		statusCode = http.StatusServiceUnavailable
		log.Warn("Readiness check failed", logger.Int("failed", len(notes)))
	}

	response.RespondJSON(w, statusCode, ReadinessResponse{
		Status:  overallStatus,
		Version: h.version,
		Checks:  checks,
		Notes:   notes,
	})
}
