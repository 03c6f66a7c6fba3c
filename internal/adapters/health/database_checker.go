package health

import (
	"context"
	"errors"

	"blog/internal/adapters/database"
	"blog/internal/platform/health"
)

// Pinger is satisfied by both database lifecycles.
type Pinger interface {
	Ping(ctx context.Context) error
}

type DatabaseChecker struct {
	db   Pinger
	name string
}

func NewDatabaseChecker(db Pinger, name string) *DatabaseChecker {
	return &DatabaseChecker{
		db:   db,
		name: name,
	}
}

func (c *DatabaseChecker) Name() string {
	return c.name
}

func (c *DatabaseChecker) Check(ctx context.Context) health.CheckResult {
	err := c.db.Ping(ctx)
	switch {
	case errors.Is(err, database.ErrNotStarted):
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "database connection is not initialized",
		}
	case err != nil:
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "database connection failed",
			Error:   err.Error(),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: "database connection healthy",
	}
}
