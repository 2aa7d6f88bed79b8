package endpoints

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/logger"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/toolregistry"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	ToolSearchFlights   = "search_flights"
	ToolSearchAirports  = "search_airports"
	ToolGetFlightPrices = "get_flight_prices"
	ToolHealthCheck     = "health_check"
	ToolServerInfo      = "server_info"

	iataPattern = "^[A-Za-z]{3}$"
	datePattern = `^\d{4}-\d{2}-\d{2}$`
)

var errInvalidType = errors.New("invalid type")

type FlightService interface {
	SearchFlights(ctx context.Context, req dto.SearchFlightsRequest) (dto.SearchFlightsResponse, error)
	SearchAirports(ctx context.Context, req dto.SearchAirportsRequest) (dto.SearchAirportsResponse, error)
	GetFlightPrices(ctx context.Context, req dto.FlightPricesRequest) (dto.PriceInsight, error)
}

type ServerService interface {
	HealthCheck(ctx context.Context) dto.HealthCheckResponse
	ServerInfo(ctx context.Context) dto.ServerInfoResponse
}

type ToolEndpoint struct {
	SearchFlights   endpoint.Endpoint
	SearchAirports  endpoint.Endpoint
	GetFlightPrices endpoint.Endpoint
	HealthCheck     endpoint.Endpoint
	ServerInfo      endpoint.Endpoint
}

func MakeToolEndpoint(flights FlightService, server ServerService) ToolEndpoint {
	return ToolEndpoint{
		SearchFlights:   makeSearchFlightsEndpoint(flights),
		SearchAirports:  makeSearchAirportsEndpoint(flights),
		GetFlightPrices: makeGetFlightPricesEndpoint(flights),
		HealthCheck:     makeHealthCheckEndpoint(server),
		ServerInfo:      makeServerInfoEndpoint(server),
	}
}

// RegisterTools advertises every tool on the registry in a stable order.
func RegisterTools(registry *toolregistry.Registry, ep ToolEndpoint) {
	tools := []toolregistry.Tool{
		{
			Definition: searchFlightsTool(),
			Decode:     decodeWith[dto.SearchFlightsRequest](),
			Endpoint:   ep.SearchFlights,
		},
		{
			Definition: searchAirportsTool(),
			Decode:     decodeWith[dto.SearchAirportsRequest](),
			Endpoint:   ep.SearchAirports,
		},
		{
			Definition: getFlightPricesTool(),
			Decode:     decodeWith[dto.FlightPricesRequest](),
			Endpoint:   ep.GetFlightPrices,
		},
		{
			Definition: mcp.NewTool(ToolHealthCheck,
				mcp.WithDescription("Report whether the flight search server is running."),
			),
			Decode:   decodeWith[dto.NoArguments](),
			Endpoint: ep.HealthCheck,
		},
		{
			Definition: mcp.NewTool(ToolServerInfo,
				mcp.WithDescription("Describe the server: name, version and available tools."),
			),
			Decode:   decodeWith[dto.NoArguments](),
			Endpoint: ep.ServerInfo,
		},
	}

	for _, tool := range tools {
		tool.Endpoint = LoggingMiddleware(tool.Definition.Name)(tool.Endpoint)
		registry.Register(tool)
	}
}

func searchFlightsTool() mcp.Tool {
	return mcp.NewTool(ToolSearchFlights,
		mcp.WithDescription("Search flights between two airports and return the five cheapest offers."),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Pattern(iataPattern),
			mcp.Description("Departure airport IATA code, e.g. BOM"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Pattern(iataPattern),
			mcp.Description("Arrival airport IATA code, e.g. DEL"),
		),
		mcp.WithString("departure_date",
			mcp.Required(),
			mcp.Pattern(datePattern),
			mcp.Description("Outbound date in YYYY-MM-DD format"),
		),
		mcp.WithString("return_date",
			mcp.Pattern(datePattern),
			mcp.Description("Return date in YYYY-MM-DD format, omit for a one-way trip"),
		),
		mcp.WithString("currency",
			mcp.DefaultString(dto.DefaultCurrency),
			mcp.Description("ISO 4217 currency code for prices"),
		),
	)
}

func searchAirportsTool() mcp.Tool {
	return mcp.NewTool(ToolSearchAirports,
		mcp.WithDescription("Find airports and their IATA codes by city or airport name."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.MinLength(2),
			mcp.MaxLength(100),
			mcp.Description("City, airport name or code to look up"),
		),
	)
}

func getFlightPricesTool() mcp.Tool {
	return mcp.NewTool(ToolGetFlightPrices,
		mcp.WithDescription("Get price insights and the price trend of a route over a date range."),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Pattern(iataPattern),
			mcp.Description("Departure airport IATA code"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Pattern(iataPattern),
			mcp.Description("Arrival airport IATA code"),
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Pattern(datePattern),
			mcp.Description("First date of the range in YYYY-MM-DD format"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Pattern(datePattern),
			mcp.Description("Last date of the range in YYYY-MM-DD format"),
		),
		mcp.WithString("currency",
			mcp.DefaultString(dto.DefaultCurrency),
			mcp.Description("ISO 4217 currency code for prices"),
		),
	)
}

func decodeWith[T any, PT interface {
	*T
	dto.Arguments
}]() toolregistry.DecodeFunc {
	return func(args map[string]any) (any, error) {
		req, err := dto.DecodeArguments[T, PT](args)
		if err != nil {
			return nil, err
		}

		return &req, nil
	}
}

func makeSearchFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchFlightsRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		flights, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return flights, nil
	}
}

func makeSearchAirportsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchAirportsRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		airports, err := service.SearchAirports(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return airports, nil
	}
}

func makeGetFlightPricesEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlightPricesRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		prices, err := service.GetFlightPrices(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return prices, nil
	}
}

func makeHealthCheckEndpoint(service ServerService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		return service.HealthCheck(ctx), nil
	}
}

func makeServerInfoEndpoint(service ServerService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		return service.ServerInfo(ctx), nil
	}
}

// LoggingMiddleware logs the outcome and latency of every call to a tool.
func LoggingMiddleware(tool string) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			ctx = logger.WithValue(ctx, logger.ToolNameKey, tool)
			start := time.Now()

			defer func() {
				attrs := []any{slog.Int64("duration_ms", time.Since(start).Milliseconds())}
				if err != nil {
					attrs = append(attrs,
						slog.String("kind", string(exception.KindOf(err))),
						slog.String("error", err.Error()))
					slog.WarnContext(ctx, "tool call failed", attrs...)

					return
				}

				slog.InfoContext(ctx, "tool call completed", attrs...)
			}()

			return next(ctx, request)
		}
	}
}
