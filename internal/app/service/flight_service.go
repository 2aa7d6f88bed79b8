package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/flight"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/serpapi"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/utils"
)

const (
	// MaxAirports caps the airport matches returned to the caller.
	MaxAirports = 10

	noFlightsNote  = "no flights found for the requested route and dates"
	noAirportsNote = "no airports matched the query"
)

var (
	parenthesizedCode = regexp.MustCompile(`\(([A-Z]{3})\)`)
	labelledCode      = regexp.MustCompile(`IATA(?:\s+code)?:?\s+([A-Z]{3})\b`)
)

// FlightDataProvider is the upstream flight data API.
type FlightDataProvider interface {
	SearchFlights(ctx context.Context, params serpapi.FlightSearchParams) (serpapi.FlightSearchResponse, error)
	SearchAirports(ctx context.Context, query string) (serpapi.WebSearchResponse, error)
	GetPriceInsights(ctx context.Context, params serpapi.PriceInsightParams) (serpapi.PriceInsights, error)
}

// FlightService shapes upstream flight data into tool results.
type FlightService struct {
	Provider FlightDataProvider
	Now      func() time.Time
}

func NewFlightService(provider FlightDataProvider) *FlightService {
	return &FlightService{
		Provider: provider,
		Now:      time.Now,
	}
}

// SearchFlights returns the cheapest offers on a route, best and other flights combined.
func (s *FlightService) SearchFlights(ctx context.Context,
	req dto.SearchFlightsRequest,
) (dto.SearchFlightsResponse, error) {
	resp, err := s.Provider.SearchFlights(ctx, serpapi.FlightSearchParams{
		DepartureID:  req.Source,
		ArrivalID:    req.Destination,
		OutboundDate: req.DepartureDate,
		ReturnDate:   req.ReturnDate,
		Currency:     req.Currency,
	})
	if err != nil {
		return dto.SearchFlightsResponse{}, fmt.Errorf("search flights: %w", err)
	}

	groups := slices.Concat(resp.BestFlights, resp.OtherFlights)

	offers := make([]dto.FlightOffer, len(groups))
	for i, group := range groups {
		offers[i] = toFlightOffer(group, req.Currency)
	}

	offers = flight.TopFlights(offers, flight.MaxOffers)

	slog.DebugContext(ctx, "flights shaped",
		slog.Int("upstream_offers", len(groups)),
		slog.Int("returned_offers", len(offers)))

	result := dto.SearchFlightsResponse{
		Flights:         offers,
		TotalFlights:    len(offers),
		SearchParams:    req,
		SearchTimestamp: s.Now(),
	}

	if len(offers) == 0 {
		result.Note = noFlightsNote
	}

	if resp.PriceInsights != nil {
		result.PriceInsights = toPriceSummary(*resp.PriceInsights, req.Currency)
	}

	return result, nil
}

// SearchAirports returns airport matches in upstream order.
func (s *FlightService) SearchAirports(ctx context.Context,
	req dto.SearchAirportsRequest,
) (dto.SearchAirportsResponse, error) {
	resp, err := s.Provider.SearchAirports(ctx, req.Query)
	if err != nil {
		return dto.SearchAirportsResponse{}, fmt.Errorf("search airports: %w", err)
	}

	results := resp.OrganicResults
	if len(results) > MaxAirports {
		results = results[:MaxAirports]
	}

	airports := make([]dto.AirportInfo, len(results))
	for i, result := range results {
		airports[i] = dto.AirportInfo{
			Name:        result.Title,
			IATACode:    extractIATACode(result, req.Query),
			Description: result.Snippet,
			Link:        result.Link,
		}
	}

	response := dto.SearchAirportsResponse{
		Query:           req.Query,
		Airports:        airports,
		TotalAirports:   len(airports),
		SearchTimestamp: s.Now(),
	}

	if len(airports) == 0 {
		response.Note = noAirportsNote
	}

	return response, nil
}

// GetFlightPrices returns the price bounds and trend for a date range.
func (s *FlightService) GetFlightPrices(ctx context.Context,
	req dto.FlightPricesRequest,
) (dto.PriceInsight, error) {
	insights, err := s.Provider.GetPriceInsights(ctx, serpapi.PriceInsightParams{
		DepartureID: req.Source,
		ArrivalID:   req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Currency:    req.Currency,
	})
	if err != nil {
		return dto.PriceInsight{}, fmt.Errorf("get flight prices: %w", err)
	}

	result := dto.PriceInsight{
		Source:          req.Source,
		Destination:     req.Destination,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Currency:        req.Currency,
		LowestPrice:     pricePtr(insights.LowestPrice, req.Currency),
		PriceLevel:      insights.PriceLevel,
		Recommendation:  recommend(insights.PriceLevel),
		History:         make([]dto.PricePoint, 0, len(insights.PriceHistory)),
		SearchTimestamp: s.Now(),
	}

	var typicalHigh float64
	if len(insights.TypicalPriceRange) == 2 {
		result.TypicalLow = pricePtr(insights.TypicalPriceRange[0], req.Currency)
		result.TypicalHigh = pricePtr(insights.TypicalPriceRange[1], req.Currency)
		typicalHigh = insights.TypicalPriceRange[1]
	}

	highest := typicalHigh
	for _, point := range insights.PriceHistory {
		if len(point) != 2 {
			continue
		}

		result.History = append(result.History, dto.PricePoint{
			Date:  time.Unix(int64(point[0]), 0).UTC().Format(utils.DateLayout),
			Price: point[1],
		})

		highest = max(highest, point[1])
	}

	result.HighestPrice = pricePtr(highest, req.Currency)

	return result, nil
}

func toFlightOffer(group serpapi.FlightGroup, currency string) dto.FlightOffer {
	segments := make([]dto.FlightSegment, len(group.Flights))
	for i, seg := range group.Flights {
		segments[i] = dto.FlightSegment{
			Airline:      seg.Airline,
			FlightNumber: seg.FlightNumber,
			Departure: dto.AirportTime{
				Airport: seg.DepartureAirport.ID,
				Name:    seg.DepartureAirport.Name,
				Time:    seg.DepartureAirport.Time,
			},
			Arrival: dto.AirportTime{
				Airport: seg.ArrivalAirport.ID,
				Name:    seg.ArrivalAirport.Name,
				Time:    seg.ArrivalAirport.Time,
			},
			Duration:     flight.NewDuration(seg.Duration),
			Aircraft:     seg.Airplane,
			TravelClass:  seg.TravelClass,
			Legroom:      seg.Legroom,
			Overnight:    seg.Overnight,
			OftenDelayed: seg.OftenDelayed,
		}
	}

	layovers := make([]dto.Layover, len(group.Layovers))
	for i, layover := range group.Layovers {
		layovers[i] = dto.Layover{
			Airport:   layover.ID,
			Name:      layover.Name,
			Duration:  flight.NewDuration(layover.Duration),
			Overnight: layover.Overnight,
		}
	}

	offer := dto.FlightOffer{
		Airline:     flight.UnknownAirline,
		Price:       flight.NewPrice(group.Price, currency),
		Duration:    flight.NewDuration(group.TotalDuration),
		Stops:       len(layovers),
		Summary:     flight.Summarize(layovers),
		Type:        group.Type,
		Segments:    segments,
		Layovers:    layovers,
		BookingLink: flight.BookingLink(group.BookingToken, group.DepartureToken),
	}

	if len(segments) > 0 {
		if segments[0].Airline != "" {
			offer.Airline = segments[0].Airline
		}

		offer.DepartureTime = segments[0].Departure.Time
		offer.ArrivalTime = segments[len(segments)-1].Arrival.Time
	}

	return offer
}

func toPriceSummary(insights serpapi.PriceInsights, currency string) *dto.PriceSummary {
	return &dto.PriceSummary{
		LowestPrice:    pricePtr(insights.LowestPrice, currency),
		PriceLevel:     insights.PriceLevel,
		Recommendation: recommend(insights.PriceLevel),
	}
}

func recommend(level string) string {
	switch strings.ToLower(level) {
	case "low":
		return "prices are currently low, a good time to book"
	case "typical":
		return "prices are currently typical for this route"
	case "high":
		return "prices are currently high, consider other dates"
	default:
		return "no price recommendation available"
	}
}

func pricePtr(amount float64, currency string) *dto.Price {
	if amount <= 0 {
		return nil
	}

	price := flight.NewPrice(amount, currency)

	return &price
}

// extractIATACode finds the airport code in a search result, falling back to the
// query itself when it is a code the result mentions.
func extractIATACode(result serpapi.OrganicResult, query string) string {
	for _, text := range []string{result.Title, result.Snippet} {
		if m := parenthesizedCode.FindStringSubmatch(text); m != nil {
			return m[1]
		}

		if m := labelledCode.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}

	code := strings.ToUpper(query)
	if len(code) == 3 && strings.Contains(result.Title+" "+result.Snippet, code) {
		return code
	}

	return ""
}
