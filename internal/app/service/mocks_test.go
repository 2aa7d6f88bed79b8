//go:build unit

package service

import (
	"context"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/serpapi"
	"github.com/stretchr/testify/mock"
)

type MockFlightDataProvider struct {
	mock.Mock
}

func NewMockFlightDataProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFlightDataProvider {
	m := &MockFlightDataProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFlightDataProvider) SearchFlights(ctx context.Context,
	params serpapi.FlightSearchParams,
) (serpapi.FlightSearchResponse, error) {
	args := m.Called(ctx, params)

	return args.Get(0).(serpapi.FlightSearchResponse), args.Error(1)
}

func (m *MockFlightDataProvider) SearchAirports(ctx context.Context,
	query string,
) (serpapi.WebSearchResponse, error) {
	args := m.Called(ctx, query)

	return args.Get(0).(serpapi.WebSearchResponse), args.Error(1)
}

func (m *MockFlightDataProvider) GetPriceInsights(ctx context.Context,
	params serpapi.PriceInsightParams,
) (serpapi.PriceInsights, error) {
	args := m.Called(ctx, params)

	return args.Get(0).(serpapi.PriceInsights), args.Error(1)
}

type staticNamer []string

func (s staticNamer) Names() []string { return s }
