package health

import (
	"context"
	"fmt"

	"blog/internal/platform/health"
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// MemoryChecker reports the in-process store as healthy while it answers Count.
type MemoryChecker struct {
	store Counter
}

func NewMemoryChecker(store Counter) *MemoryChecker {
	return &MemoryChecker{store: store}
}

func (c *MemoryChecker) Name() string {
	return "memory_storage"
}

func (c *MemoryChecker) Check(ctx context.Context) health.CheckResult {
	if err := ctx.Err(); err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "memory storage check cancelled",
			Error:   err.Error(),
		}
	}

	n, err := c.store.Count(ctx)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "memory storage failed",
			Error:   err.Error(),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("memory storage operational, %d articles", n),
	}
}
