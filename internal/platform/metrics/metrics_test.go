package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type MetricsTestSuite struct {
	suite.Suite
	provider *Provider
}

func (s *MetricsTestSuite) SetupTest() {
	var err error
	s.provider, err = NewProvider()
	s.Require().NoError(err)
}

func (s *MetricsTestSuite) scrape() string {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	s.provider.Handler().ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)
	return w.Body.String()
}

func (s *MetricsTestSuite) TestNewProvider_Instruments() {
	s.Assert().NotNil(s.provider.RequestsTotal)
	s.Assert().NotNil(s.provider.RequestDuration)
	s.Assert().NotNil(s.provider.RequestsInFlight)
	s.Assert().NotNil(s.provider.RepositoryOperations)
	s.Assert().NotNil(s.provider.RepositoryDuration)
	s.Assert().NotNil(s.provider.registry)
}

func (s *MetricsTestSuite) TestNewProvider_SeparateRegistries() {
	other, err := NewProvider()
	s.Require().NoError(err)

	s.Assert().NotSame(s.provider.registry, other.registry)
}

func (s *MetricsTestSuite) TestHandler_ExposesHTTPMetrics() {
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String("method", "GET"), attribute.String("status", "200"))

	s.provider.RequestsTotal.Add(ctx, 1, attrs)
	s.provider.RequestDuration.Record(ctx, 0.1, attrs)
	s.provider.RequestsInFlight.Add(ctx, 1)

	body := s.scrape()
	s.Assert().Contains(body, "http_requests_total")
	s.Assert().Contains(body, "http_request_duration_seconds")
	s.Assert().Contains(body, "http_requests_in_flight")
}

func (s *MetricsTestSuite) TestHandler_ExposesRepositoryMetrics() {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("entity", "article"),
		attribute.String("operation", "save"),
		attribute.String("outcome", "ok"),
	)

	s.provider.RepositoryOperations.Add(ctx, 1, attrs)
	s.provider.RepositoryDuration.Record(ctx, 0.002, attrs)

	body := s.scrape()
	s.Assert().Contains(body, "repository_operations_total")
	s.Assert().Contains(body, "repository_operation_duration_seconds")
	s.Assert().Contains(body, `operation="save"`)
}

func TestMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}
