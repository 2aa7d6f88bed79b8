package flight

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/utils"
)

const (
	UnknownAirline = "Unknown Airline"

	googleFlightsURL = "https://www.google.com/travel/flights"
)

// Summarize describes the stops of an itinerary.
// Example: "1 stop via DEL (1h 5m)"
func Summarize(layovers []dto.Layover) string {
	switch len(layovers) {
	case 0:
		return "Nonstop"
	case 1:
		return fmt.Sprintf("1 stop via %s", describeLayover(layovers[0]))
	}

	stops := make([]string, len(layovers))
	for i, layover := range layovers {
		stops[i] = describeLayover(layover)
	}

	return fmt.Sprintf("%d stops via %s", len(layovers), strings.Join(stops, ", "))
}

func describeLayover(layover dto.Layover) string {
	place := layover.Airport
	if place == "" {
		place = layover.Name
	}

	desc := fmt.Sprintf("%s (%s)", place, layover.Duration.Formatted)
	if layover.Overnight {
		desc += " overnight"
	}

	return desc
}

// BookingLink builds the Google Flights link for an offer, preferring the booking token.
// It returns an empty string when the upstream gave neither token.
func BookingLink(bookingToken, departureToken string) string {
	token := bookingToken
	if token == "" {
		token = departureToken
	}

	if token == "" {
		return ""
	}

	return googleFlightsURL + "?tfs=" + url.QueryEscape(token)
}

// NewDuration builds a duration from a minute count.
func NewDuration(minutes int) dto.Duration {
	return dto.Duration{
		TotalMinutes: minutes,
		Formatted:    utils.ConvertMinutesToDuration(int64(minutes)),
	}
}

// NewPrice builds a price tagged with its currency.
func NewPrice(amount float64, currency string) dto.Price {
	return dto.Price{
		Amount:    amount,
		Currency:  currency,
		Formatted: utils.FormatPrice(amount, currency),
	}
}
