//go:build unit

package flight

import (
	"testing"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	summarize := func(layovers []dto.Layover, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, Summarize(layovers))
		}
	}

	t.Run("nonstop", summarize(nil, "Nonstop"))
	t.Run("one_stop", summarize([]dto.Layover{
		{Airport: "DEL", Duration: NewDuration(65)},
	}, "1 stop via DEL (1h 5m)"))
	t.Run("two_stops_with_overnight", summarize([]dto.Layover{
		{Airport: "AMD", Duration: NewDuration(45)},
		{Name: "Hyderabad", Duration: NewDuration(600), Overnight: true},
	}, "2 stops via AMD (45m), Hyderabad (10h) overnight"))
}

func TestBookingLink(t *testing.T) {
	link := func(booking, departure, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, BookingLink(booking, departure))
		}
	}

	t.Run("booking_token_first", link("abc=", "dep", "https://www.google.com/travel/flights?tfs=abc%3D"))
	t.Run("departure_token_fallback", link("", "dep", "https://www.google.com/travel/flights?tfs=dep"))
	t.Run("no_token", link("", "", ""))
}
