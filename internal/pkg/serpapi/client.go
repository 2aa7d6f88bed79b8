package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
)

const (
	DefaultBaseURL = "https://serpapi.com/search"

	EngineGoogleFlights = "google_flights"
	EngineGoogle        = "google"

	tripTypeRoundTrip = "1"
	tripTypeOneWay    = "2"

	keySearchMetadata = "search_metadata"
	keyPriceInsights  = "price_insights"
	keyError          = "error"

	maxBodyBytes = 8 << 20
)

// errNoResults marks the upstream "no results" answer, which is not a failure.
var errNoResults = errors.New("no results")

// Config for the SerpAPI client.
type Config struct {
	BaseURL    string
	APIKey     string
	Language   string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	HTTPClient *http.Client
}

// Client issues one GET per call against the SerpAPI search endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	c := &Client{
		baseURL:    config.BaseURL,
		apiKey:     config.APIKey,
		language:   config.Language,
		timeout:    config.Timeout,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
		httpClient: config.HTTPClient,
	}

	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}

	if c.language == "" {
		c.language = "en"
	}

	if c.timeout <= 0 {
		c.timeout = 15 * time.Second
	}

	// at most one retry on transport failure
	c.maxRetries = max(0, min(c.maxRetries, 1))

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// SearchFlights queries the google_flights engine for offers on a route.
func (c *Client) SearchFlights(ctx context.Context, params FlightSearchParams) (FlightSearchResponse, error) {
	query := url.Values{}
	query.Set("departure_id", params.DepartureID)
	query.Set("arrival_id", params.ArrivalID)
	query.Set("outbound_date", params.OutboundDate)
	query.Set("currency", params.Currency)

	if params.ReturnDate != "" {
		query.Set("return_date", params.ReturnDate)
		query.Set("type", tripTypeRoundTrip)
	} else {
		query.Set("type", tripTypeOneWay)
	}

	var response FlightSearchResponse

	err := c.get(ctx, EngineGoogleFlights, query, &response, keySearchMetadata)
	if errors.Is(err, errNoResults) {
		return FlightSearchResponse{}, nil
	}

	if err != nil {
		return FlightSearchResponse{}, err
	}

	return response, nil
}

// SearchAirports runs a generic web search for airports matching query.
func (c *Client) SearchAirports(ctx context.Context, query string) (WebSearchResponse, error) {
	values := url.Values{}
	values.Set("q", fmt.Sprintf("%s airport IATA code", query))

	var response WebSearchResponse

	err := c.get(ctx, EngineGoogle, values, &response, keySearchMetadata)
	if errors.Is(err, errNoResults) {
		return WebSearchResponse{}, nil
	}

	if err != nil {
		return WebSearchResponse{}, err
	}

	return response, nil
}

// GetPriceInsights queries the google_flights engine for the price trend of a date range.
func (c *Client) GetPriceInsights(ctx context.Context, params PriceInsightParams) (PriceInsights, error) {
	query := url.Values{}
	query.Set("departure_id", params.DepartureID)
	query.Set("arrival_id", params.ArrivalID)
	query.Set("outbound_date", params.StartDate)
	query.Set("return_date", params.EndDate)
	query.Set("type", tripTypeRoundTrip)
	query.Set("currency", params.Currency)

	var response FlightSearchResponse

	err := c.get(ctx, EngineGoogleFlights, query, &response, keySearchMetadata, keyPriceInsights)
	if errors.Is(err, errNoResults) {
		return PriceInsights{}, ErrNoPriceInsights
	}

	if err != nil {
		return PriceInsights{}, err
	}

	if response.PriceInsights == nil {
		return PriceInsights{}, ErrNoPriceInsights
	}

	return *response.PriceInsights, nil
}

// get performs the request, retrying once on transport failure, and decodes the body into out
// after checking that every required top-level key is present.
func (c *Client) get(ctx context.Context, engine string, query url.Values,
	out any, requiredKeys ...string,
) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query.Set("engine", engine)
	query.Set("hl", c.language)

	// logged before the key is added
	slog.DebugContext(ctx, "calling flight data provider",
		slog.String("engine", engine), slog.String("query", query.Encode()))

	query.Set("api_key", c.apiKey)
	endpoint := c.baseURL + "?" + query.Encode()

	var body []byte

	err := retry.Do(
		func() error {
			var err error
			body, err = c.fetch(ctx, endpoint)

			return err
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)+1),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			slog.WarnContext(ctx, "retrying flight data provider request",
				slog.String("engine", engine),
				slog.Uint64("attempt", uint64(attempt)+1),
				slog.String("error", err.Error()))
		}),
	)
	if err != nil {
		if exception.KindOf(err) == exception.KindInternal &&
			(errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)) {
			return ErrUpstreamUnavailable.WithCause(err)
		}

		return err
	}

	return decodeBody(body, out, requiredKeys)
}

// fetch issues a single GET. Status and read errors are unrecoverable, network errors may be retried.
func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("build upstream request: %w", err))
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrUpstreamUnavailable.WithCause(stripAPIKey(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

		return nil, retry.Unrecoverable(errUpstreamStatus(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, retry.Unrecoverable(ErrUpstreamUnavailable.WithCause(err))
	}

	return body, nil
}

func decodeBody(body []byte, out any, requiredKeys []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ErrMalformedResponse.WithCause(err)
	}

	if raw, ok := fields[keyError]; ok {
		var message string
		if err := json.Unmarshal(raw, &message); err != nil {
			message = string(raw)
		}

		if isNoResultsMessage(message) {
			return errNoResults
		}

		return errUpstreamReported(message)
	}

	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			return errMissingKey(key)
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return ErrMalformedResponse.WithCause(err)
	}

	return nil
}

func isNoResultsMessage(message string) bool {
	return strings.Contains(strings.ToLower(message), "hasn't returned any results")
}

// stripAPIKey drops the request URL, which carries the key, from transport errors.
func stripAPIKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}
