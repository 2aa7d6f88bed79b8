package flight

import (
	"sort"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
)

// MaxOffers is the number of offers returned by a flight search.
const MaxOffers = 5

// SortFlights orders flights by ascending price. The sort is stable so offers with
// equal prices keep their upstream order, and offers without a price go last.
func SortFlights(flights []dto.FlightOffer) []dto.FlightOffer {
	sort.SliceStable(flights, func(i, j int) bool {
		pi, pj := flights[i].Price.Amount, flights[j].Price.Amount

		switch {
		case pi <= 0:
			return false
		case pj <= 0:
			return true
		default:
			return pi < pj
		}
	})

	return flights
}

// TopFlights returns the n cheapest flights in ascending price order.
func TopFlights(flights []dto.FlightOffer, n int) []dto.FlightOffer {
	sorted := SortFlights(flights)
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}
