package dto

import (
	"strings"
	"time"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/utils"
)

const DefaultCurrency = "USD"

// SearchFlightsRequest is the typed argument set of the search_flights tool.
type SearchFlightsRequest struct {
	Source        string `json:"source" validate:"required,iata"`
	Destination   string `json:"destination" validate:"required,iata"`
	DepartureDate string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Currency      string `json:"currency" validate:"required,currency"`
}

func (s *SearchFlightsRequest) Normalize() {
	s.Source = normalizeCode(s.Source)
	s.Destination = normalizeCode(s.Destination)
	s.DepartureDate = strings.TrimSpace(s.DepartureDate)
	s.ReturnDate = strings.TrimSpace(s.ReturnDate)
	s.Currency = normalizeCurrency(s.Currency)
}

func (s *SearchFlightsRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return err
	}

	if s.Source == s.Destination {
		return exception.Validation("destination", "destination must differ from source")
	}

	if s.ReturnDate != "" && dateBefore(s.ReturnDate, s.DepartureDate) {
		return exception.Validation("return_date", "return_date must be on or after departure_date")
	}

	return nil
}

// SearchAirportsRequest is the typed argument set of the search_airports tool.
type SearchAirportsRequest struct {
	Query string `json:"query" validate:"required,min=2,max=100"`
}

func (s *SearchAirportsRequest) Normalize() {
	s.Query = strings.TrimSpace(s.Query)
}

func (s *SearchAirportsRequest) Validate() error {
	return ValidateSingleError(s)
}

// FlightPricesRequest is the typed argument set of the get_flight_prices tool.
type FlightPricesRequest struct {
	Source      string `json:"source" validate:"required,iata"`
	Destination string `json:"destination" validate:"required,iata"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Currency    string `json:"currency" validate:"required,currency"`
}

func (f *FlightPricesRequest) Normalize() {
	f.Source = normalizeCode(f.Source)
	f.Destination = normalizeCode(f.Destination)
	f.StartDate = strings.TrimSpace(f.StartDate)
	f.EndDate = strings.TrimSpace(f.EndDate)
	f.Currency = normalizeCurrency(f.Currency)
}

func (f *FlightPricesRequest) Validate() error {
	if err := ValidateSingleError(f); err != nil {
		return err
	}

	if f.Source == f.Destination {
		return exception.Validation("destination", "destination must differ from source")
	}

	if dateBefore(f.EndDate, f.StartDate) {
		return exception.Validation("end_date", "end_date must be on or after start_date")
	}

	return nil
}

// NoArguments is the argument set of tools that take none.
type NoArguments struct{}

func (n *NoArguments) Normalize() {}

func (n *NoArguments) Validate() error { return nil }

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func normalizeCurrency(code string) string {
	code = normalizeCode(code)
	if code == "" {
		return DefaultCurrency
	}

	return code
}

// dateBefore reports whether a is strictly before b. Both are already validated dates.
func dateBefore(a, b string) bool {
	at, errA := time.Parse(utils.DateLayout, a)
	bt, errB := time.Parse(utils.DateLayout, b)
	if errA != nil || errB != nil {
		return false
	}

	return at.Before(bt)
}
