package dto

import "time"

// FlightOffer is one ranked flight option returned by search_flights.
type FlightOffer struct {
	Airline       string          `json:"airline"`
	Price         Price           `json:"price"`
	DepartureTime string          `json:"departure_time"`
	ArrivalTime   string          `json:"arrival_time"`
	Duration      Duration        `json:"duration"`
	Stops         int             `json:"stops"`
	Summary       string          `json:"summary"`
	Type          string          `json:"type,omitempty"`
	Segments      []FlightSegment `json:"segments"`
	Layovers      []Layover       `json:"layovers"`
	BookingLink   string          `json:"booking_link,omitempty"`
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type Duration struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type FlightSegment struct {
	Airline      string      `json:"airline"`
	FlightNumber string      `json:"flight_number"`
	Departure    AirportTime `json:"departure"`
	Arrival      AirportTime `json:"arrival"`
	Duration     Duration    `json:"duration"`
	Aircraft     string      `json:"aircraft,omitempty"`
	TravelClass  string      `json:"travel_class,omitempty"`
	Legroom      string      `json:"legroom,omitempty"`
	Overnight    bool        `json:"overnight"`
	OftenDelayed bool        `json:"often_delayed"`
}

type AirportTime struct {
	Airport string `json:"airport"`
	Name    string `json:"name"`
	Time    string `json:"time"`
}

type Layover struct {
	Airport   string   `json:"airport"`
	Name      string   `json:"name"`
	Duration  Duration `json:"duration"`
	Overnight bool     `json:"overnight"`
}

// SearchFlightsResponse is the success payload of search_flights.
type SearchFlightsResponse struct {
	Flights         []FlightOffer        `json:"flights"`
	TotalFlights    int                  `json:"total_flights"`
	SearchParams    SearchFlightsRequest `json:"search_params"`
	PriceInsights   *PriceSummary        `json:"price_insights,omitempty"`
	Note            string               `json:"note,omitempty"`
	SearchTimestamp time.Time            `json:"search_timestamp"`
}

// PriceSummary is the short price context attached to a flight search.
type PriceSummary struct {
	LowestPrice    *Price `json:"lowest_price,omitempty"`
	PriceLevel     string `json:"price_level,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

type AirportInfo struct {
	Name        string `json:"name"`
	IATACode    string `json:"iata_code,omitempty"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// SearchAirportsResponse is the success payload of search_airports.
type SearchAirportsResponse struct {
	Query           string        `json:"query"`
	Airports        []AirportInfo `json:"airports"`
	TotalAirports   int           `json:"total_airports"`
	Note            string        `json:"note,omitempty"`
	SearchTimestamp time.Time     `json:"search_timestamp"`
}

// PriceInsight is the success payload of get_flight_prices.
type PriceInsight struct {
	Source          string       `json:"source"`
	Destination     string       `json:"destination"`
	StartDate       string       `json:"start_date"`
	EndDate         string       `json:"end_date"`
	Currency        string       `json:"currency"`
	LowestPrice     *Price       `json:"lowest_price,omitempty"`
	TypicalLow      *Price       `json:"typical_low,omitempty"`
	TypicalHigh     *Price       `json:"typical_high,omitempty"`
	HighestPrice    *Price       `json:"highest_price,omitempty"`
	PriceLevel      string       `json:"price_level"`
	Recommendation  string       `json:"recommendation"`
	History         []PricePoint `json:"history"`
	SearchTimestamp time.Time    `json:"search_timestamp"`
}

type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type HealthCheckResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ServerInfoResponse struct {
	ServerName string    `json:"server_name"`
	Version    string    `json:"version"`
	Tools      []string  `json:"tools"`
	Timestamp  time.Time `json:"timestamp"`
}
