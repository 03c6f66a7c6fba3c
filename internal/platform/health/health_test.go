package health

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeChecker struct {
	name   string
	result CheckResult
	delay  time.Duration
	panics bool
	calls  atomic.Int32
}

func (c *fakeChecker) Name() string {
	return c.name
}

func (c *fakeChecker) Check(ctx context.Context) CheckResult {
	c.calls.Add(1)
	if c.panics {
		panic("store driver bug")
	}
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return CheckResult{Status: StatusUnhealthy, Error: ctx.Err().Error()}
		}
	}
	return c.result
}

func healthy(name string) *fakeChecker {
	return &fakeChecker{name: name, result: CheckResult{Status: StatusHealthy, Message: "OK"}}
}

func unhealthy(name string) *fakeChecker {
	return &fakeChecker{name: name, result: CheckResult{Status: StatusUnhealthy, Error: "connection refused"}}
}

type HealthTestSuite struct {
	suite.Suite
	manager *Manager
	ctx     context.Context
}

func (suite *HealthTestSuite) SetupTest() {
	suite.manager = NewManager(WithCheckTimeout(200 * time.Millisecond))
	suite.ctx = context.Background()
}

func TestHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func (suite *HealthTestSuite) TestNewManager_Defaults() {
	manager := NewManager()

	assert.Empty(suite.T(), manager.checkers)
	assert.Equal(suite.T(), DefaultCheckTimeout, manager.checkTimeout)
}

func (suite *HealthTestSuite) TestWithCheckTimeout_IgnoresNonPositive() {
	manager := NewManager(WithCheckTimeout(0), WithCheckTimeout(-time.Second))

	assert.Equal(suite.T(), DefaultCheckTimeout, manager.checkTimeout)
}

func (suite *HealthTestSuite) TestCheckAll_NoCheckers() {
	results := suite.manager.CheckAll(suite.ctx)

	assert.Empty(suite.T(), results)
	assert.True(suite.T(), suite.manager.IsHealthy(suite.ctx))
}

func (suite *HealthTestSuite) TestCheckAll_ReportsEveryChecker() {
	suite.manager.Register(healthy("postgres"))
	suite.manager.Register(unhealthy("sqlite"))

	results := suite.manager.CheckAll(suite.ctx)

	require.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), StatusHealthy, results["postgres"].Status)
	assert.Equal(suite.T(), "OK", results["postgres"].Message)
	assert.Equal(suite.T(), StatusUnhealthy, results["sqlite"].Status)
	assert.Equal(suite.T(), "connection refused", results["sqlite"].Error)
}

func (suite *HealthTestSuite) TestCheckAll_RunsConcurrently() {
	for i := 0; i < 5; i++ {
		checker := healthy(fmt.Sprintf("store-%d", i))
		checker.delay = 50 * time.Millisecond
		suite.manager.Register(checker)
	}

	start := time.Now()
	results := suite.manager.CheckAll(suite.ctx)

	assert.Len(suite.T(), results, 5)
	assert.Less(suite.T(), time.Since(start), 200*time.Millisecond)
	for _, result := range results {
		assert.GreaterOrEqual(suite.T(), result.Latency, 50*time.Millisecond)
	}
}

func (suite *HealthTestSuite) TestCheckAll_Timeout() {
	slow := healthy("slow")
	slow.delay = time.Second
	suite.manager.Register(slow)

	result := suite.manager.CheckAll(suite.ctx)["slow"]

	assert.Equal(suite.T(), StatusUnhealthy, result.Status)
	assert.Equal(suite.T(), context.DeadlineExceeded.Error(), result.Error)
	assert.Less(suite.T(), result.Latency, time.Second)
}

func (suite *HealthTestSuite) TestCheckAll_HealthyAfterDeadlineIsUnhealthy() {
	late := &lateChecker{}
	suite.manager.Register(late)

	result := suite.manager.CheckAll(suite.ctx)["late"]

	assert.Equal(suite.T(), StatusUnhealthy, result.Status)
	assert.Equal(suite.T(), "health check timed out", result.Message)
}

func (suite *HealthTestSuite) TestCheckAll_PanicIsContained() {
	broken := healthy("broken")
	broken.panics = true
	suite.manager.Register(broken)
	suite.manager.Register(healthy("memory_storage"))

	var results map[string]CheckResult
	require.NotPanics(suite.T(), func() {
		results = suite.manager.CheckAll(suite.ctx)
	})

	assert.Equal(suite.T(), StatusUnhealthy, results["broken"].Status)
	assert.Equal(suite.T(), "store driver bug", results["broken"].Error)
	assert.Equal(suite.T(), StatusHealthy, results["memory_storage"].Status)
}

func (suite *HealthTestSuite) TestIsHealthy() {
	tests := []struct {
		name     string
		checkers []Checker
		expected bool
	}{
		{name: "all healthy", checkers: []Checker{healthy("a"), healthy("b")}, expected: true},
		{name: "one unhealthy", checkers: []Checker{healthy("a"), unhealthy("b")}, expected: false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			manager := NewManager()
			for _, checker := range tt.checkers {
				manager.Register(checker)
			}
			assert.Equal(suite.T(), tt.expected, manager.IsHealthy(suite.ctx))
		})
	}
}

func (suite *HealthTestSuite) TestConcurrentRegisterAndCheck() {
	checker := healthy("postgres")
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			suite.manager.Register(checker)
		}()
		go func() {
			defer wg.Done()
			_ = suite.manager.CheckAll(suite.ctx)
		}()
	}
	wg.Wait()

	suite.manager.mu.RLock()
	defer suite.manager.mu.RUnlock()
	assert.Len(suite.T(), suite.manager.checkers, 10)
}

type lateChecker struct{}

func (lateChecker) Name() string { return "late" }

// Check ignores its context and still claims success after the deadline.
func (lateChecker) Check(ctx context.Context) CheckResult {
	<-ctx.Done()
	return CheckResult{Status: StatusHealthy}
}
