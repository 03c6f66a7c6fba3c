package health

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

const DefaultCheckTimeout = 2 * time.Second

type CheckResult struct {
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type ManagerInterface interface {
	Register(checker Checker)
	CheckAll(ctx context.Context) map[string]CheckResult
	IsHealthy(ctx context.Context) bool
}

// Manager runs every registered checker concurrently, each bounded by its own timeout.
type Manager struct {
	checkers     []Checker
	checkTimeout time.Duration
	mu           sync.RWMutex
}

var _ ManagerInterface = (*Manager)(nil)

type Option func(*Manager)

func WithCheckTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		if timeout > 0 {
			m.checkTimeout = timeout
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		checkers:     make([]Checker, 0),
		checkTimeout: DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Register(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers = append(m.checkers, checker)
}

func (m *Manager) CheckAll(ctx context.Context) map[string]CheckResult {
	m.mu.RLock()
	checkers := make([]Checker, len(m.checkers))
	copy(checkers, m.checkers)
	m.mu.RUnlock()

	results := make([]CheckResult, len(checkers))
	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = m.run(ctx, checker)
		}()
	}
	wg.Wait()

	byName := make(map[string]CheckResult, len(checkers))
	for i, checker := range checkers {
		byName[checker.Name()] = results[i]
	}
	return byName
}

// run never panics; a checker that panics or overruns its timeout reports unhealthy.
func (m *Manager) run(ctx context.Context, checker Checker) (result CheckResult) {
	ctx, cancel := context.WithTimeout(ctx, m.checkTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			result = CheckResult{
				Status:  StatusUnhealthy,
				Message: "health check panicked",
				Error:   fmt.Sprint(rec),
			}
		}
		result.Latency = time.Since(start)
	}()

	result = checker.Check(ctx)
	if result.Status == StatusHealthy && ctx.Err() != nil {
		result = CheckResult{
			Status:  StatusUnhealthy,
			Message: "health check timed out",
			Error:   ctx.Err().Error(),
		}
	}
	return result
}

func (m *Manager) IsHealthy(ctx context.Context) bool {
	for _, result := range m.CheckAll(ctx) {
		if result.Status == StatusUnhealthy {
			return false
		}
	}
	return true
}
