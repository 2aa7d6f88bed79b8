//go:build unit

package dto

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
	"github.com/stretchr/testify/require"
)

func TestDecodeArguments_SearchFlights(t *testing.T) {
	require.NoError(t, InitValidator())

	decodeRequest := func(args map[string]any, want SearchFlightsRequest, wantErr *exception.ApplicationError) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := DecodeArguments[SearchFlightsRequest](args)
			if wantErr != nil {
				require.Error(t, err)

				var appErr exception.ApplicationError
				require.ErrorAs(t, err, &appErr)

				if diff := cmp.Diff(*wantErr, appErr); diff != "" {
					t.Fatalf("DecodeArguments() error mismatch (-want +got):\n%s", diff)
				}
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("DecodeArguments() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	validationErr := func(field, message string) *exception.ApplicationError {
		err := exception.Validation(field, message)
		return &err
	}

	t.Run("valid_round_trip_normalized", decodeRequest(map[string]any{
		"source":         " bom",
		"destination":    "del ",
		"departure_date": "2025-11-15",
		"return_date":    "2025-11-20",
	}, SearchFlightsRequest{
		Source:        "BOM",
		Destination:   "DEL",
		DepartureDate: "2025-11-15",
		ReturnDate:    "2025-11-20",
		Currency:      "USD",
	}, nil))

	t.Run("valid_one_way_with_currency", decodeRequest(map[string]any{
		"source":         "JFK",
		"destination":    "LAX",
		"departure_date": "2025-12-01",
		"currency":       "eur",
	}, SearchFlightsRequest{
		Source:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-12-01",
		Currency:      "EUR",
	}, nil))

	t.Run("missing_source", decodeRequest(map[string]any{
		"destination":    "DEL",
		"departure_date": "2025-11-15",
	}, SearchFlightsRequest{}, validationErr("source", "source is a required field")))

	t.Run("source_not_three_letters", decodeRequest(map[string]any{
		"source":         "BOMB",
		"destination":    "DEL",
		"departure_date": "2025-11-15",
	}, SearchFlightsRequest{}, validationErr("source", "source must be a 3-letter IATA airport code")))

	t.Run("source_with_digits", decodeRequest(map[string]any{
		"source":         "B0M",
		"destination":    "DEL",
		"departure_date": "2025-11-15",
	}, SearchFlightsRequest{}, validationErr("source", "source must be a 3-letter IATA airport code")))

	t.Run("source_wrong_type", decodeRequest(map[string]any{
		"source":         123,
		"destination":    "DEL",
		"departure_date": "2025-11-15",
	}, SearchFlightsRequest{}, validationErr("source", "source must be a string")))

	t.Run("same_source_and_destination", decodeRequest(map[string]any{
		"source":         "BOM",
		"destination":    "bom",
		"departure_date": "2025-11-15",
	}, SearchFlightsRequest{}, validationErr("destination", "destination must differ from source")))

	t.Run("malformed_departure_date", decodeRequest(map[string]any{
		"source":         "BOM",
		"destination":    "DEL",
		"departure_date": "15/11/2025",
	}, SearchFlightsRequest{}, validationErr("departure_date",
		"departure_date must be a valid date in YYYY-MM-DD format")))

	t.Run("impossible_calendar_date", decodeRequest(map[string]any{
		"source":         "BOM",
		"destination":    "DEL",
		"departure_date": "2025-02-30",
	}, SearchFlightsRequest{}, validationErr("departure_date",
		"departure_date must be a valid date in YYYY-MM-DD format")))

	t.Run("return_before_departure", decodeRequest(map[string]any{
		"source":         "BOM",
		"destination":    "DEL",
		"departure_date": "2025-11-15",
		"return_date":    "2025-11-14",
	}, SearchFlightsRequest{}, validationErr("return_date", "return_date must be on or after departure_date")))

	t.Run("unknown_currency", decodeRequest(map[string]any{
		"source":         "BOM",
		"destination":    "DEL",
		"departure_date": "2025-11-15",
		"currency":       "ZZQ",
	}, SearchFlightsRequest{}, validationErr("currency", "currency must be an ISO 4217 currency code")))
}

func TestDecodeArguments_FlightPrices(t *testing.T) {
	require.NoError(t, InitValidator())

	t.Run("start_after_end", func(t *testing.T) {
		_, err := DecodeArguments[FlightPricesRequest](map[string]any{
			"source":      "BOM",
			"destination": "DEL",
			"start_date":  "2025-11-20",
			"end_date":    "2025-11-15",
		})

		var appErr exception.ApplicationError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, exception.KindValidation, appErr.Kind)
		require.Equal(t, "end_date", appErr.Field)
	})

	t.Run("same_day_range", func(t *testing.T) {
		got, err := DecodeArguments[FlightPricesRequest](map[string]any{
			"source":      "BOM",
			"destination": "DEL",
			"start_date":  "2025-11-15",
			"end_date":    "2025-11-15",
		})
		require.NoError(t, err)
		require.Equal(t, "USD", got.Currency)
	})
}

func TestDecodeArguments_SearchAirports(t *testing.T) {
	require.NoError(t, InitValidator())

	got, err := DecodeArguments[SearchAirportsRequest](map[string]any{"query": "  Mumbai "})
	require.NoError(t, err)
	require.Equal(t, "Mumbai", got.Query)

	_, err = DecodeArguments[SearchAirportsRequest](nil)

	var appErr exception.ApplicationError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "query", appErr.Field)
	require.Equal(t, "query is a required field", appErr.Message)
}
