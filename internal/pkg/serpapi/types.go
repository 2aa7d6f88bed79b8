package serpapi

// FlightSearchParams holds the already validated query of a flight search.
type FlightSearchParams struct {
	DepartureID  string
	ArrivalID    string
	OutboundDate string
	ReturnDate   string
	Currency     string
}

// PriceInsightParams holds the already validated query of a price trend lookup.
type PriceInsightParams struct {
	DepartureID string
	ArrivalID   string
	StartDate   string
	EndDate     string
	Currency    string
}

// FlightSearchResponse is the subset of the google_flights payload this service reads.
type FlightSearchResponse struct {
	SearchMetadata SearchMetadata `json:"search_metadata"`
	BestFlights    []FlightGroup  `json:"best_flights"`
	OtherFlights   []FlightGroup  `json:"other_flights"`
	PriceInsights  *PriceInsights `json:"price_insights,omitempty"`
}

type SearchMetadata struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// FlightGroup is one bookable offer made of one or more segments.
type FlightGroup struct {
	Flights         []FlightSegment  `json:"flights"`
	Layovers        []Layover        `json:"layovers"`
	TotalDuration   int              `json:"total_duration"`
	CarbonEmissions *CarbonEmissions `json:"carbon_emissions,omitempty"`
	Price           float64          `json:"price"`
	Type            string           `json:"type"`
	AirlineLogo     string           `json:"airline_logo"`
	Extensions      []string         `json:"extensions"`
	DepartureToken  string           `json:"departure_token"`
	BookingToken    string           `json:"booking_token"`
}

type FlightSegment struct {
	DepartureAirport AirportTime `json:"departure_airport"`
	ArrivalAirport   AirportTime `json:"arrival_airport"`
	Duration         int         `json:"duration"`
	Airplane         string      `json:"airplane"`
	Airline          string      `json:"airline"`
	AirlineLogo      string      `json:"airline_logo"`
	TravelClass      string      `json:"travel_class"`
	FlightNumber     string      `json:"flight_number"`
	Legroom          string      `json:"legroom"`
	Extensions       []string    `json:"extensions"`
	Overnight        bool        `json:"overnight"`
	OftenDelayed     bool        `json:"often_delayed_by_over_30_min"`
}

type AirportTime struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

type Layover struct {
	Duration  int    `json:"duration"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight"`
}

type CarbonEmissions struct {
	ThisFlight          int `json:"this_flight"`
	TypicalForThisRoute int `json:"typical_for_this_route"`
	DifferencePercent   int `json:"difference_percent"`
}

// PriceInsights is the price trend block of a google_flights payload.
type PriceInsights struct {
	LowestPrice       float64     `json:"lowest_price"`
	PriceLevel        string      `json:"price_level"`
	TypicalPriceRange []float64   `json:"typical_price_range"`
	PriceHistory      [][]float64 `json:"price_history"`
}

// WebSearchResponse is the subset of the generic google engine payload this service reads.
type WebSearchResponse struct {
	SearchMetadata SearchMetadata  `json:"search_metadata"`
	OrganicResults []OrganicResult `json:"organic_results"`
}

type OrganicResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
}
