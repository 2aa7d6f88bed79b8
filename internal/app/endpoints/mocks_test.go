//go:build unit

package endpoints

import (
	"context"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
	"github.com/stretchr/testify/mock"
)

type MockFlightService struct {
	mock.Mock
}

func NewMockFlightService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFlightService {
	m := &MockFlightService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFlightService) SearchFlights(ctx context.Context,
	req dto.SearchFlightsRequest,
) (dto.SearchFlightsResponse, error) {
	args := m.Called(ctx, req)

	return args.Get(0).(dto.SearchFlightsResponse), args.Error(1)
}

func (m *MockFlightService) SearchAirports(ctx context.Context,
	req dto.SearchAirportsRequest,
) (dto.SearchAirportsResponse, error) {
	args := m.Called(ctx, req)

	return args.Get(0).(dto.SearchAirportsResponse), args.Error(1)
}

func (m *MockFlightService) GetFlightPrices(ctx context.Context,
	req dto.FlightPricesRequest,
) (dto.PriceInsight, error) {
	args := m.Called(ctx, req)

	return args.Get(0).(dto.PriceInsight), args.Error(1)
}

type stubServerService struct {
	health dto.HealthCheckResponse
	info   dto.ServerInfoResponse
}

func (s stubServerService) HealthCheck(_ context.Context) dto.HealthCheckResponse { return s.health }

func (s stubServerService) ServerInfo(_ context.Context) dto.ServerInfoResponse { return s.info }
