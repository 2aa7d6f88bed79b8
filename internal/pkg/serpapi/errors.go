package serpapi

import (
	"fmt"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
)

var ErrUpstreamUnavailable = exception.ApplicationError{
	Kind:    exception.KindUpstreamTransport,
	Message: "flight data provider unreachable or timed out",
}

var ErrMalformedResponse = exception.ApplicationError{
	Kind:    exception.KindUpstreamResponse,
	Message: "malformed upstream response",
}

var ErrNoPriceInsights = exception.ApplicationError{
	Kind:    exception.KindUpstreamResponse,
	Message: "upstream returned no price insights for this route",
}

func errUpstreamStatus(status int) exception.ApplicationError {
	return exception.ApplicationError{
		Kind:    exception.KindUpstreamTransport,
		Message: fmt.Sprintf("flight data provider responded with HTTP %d", status),
	}
}

func errUpstreamReported(message string) exception.ApplicationError {
	return exception.ApplicationError{
		Kind:    exception.KindUpstreamResponse,
		Message: fmt.Sprintf("flight data provider error: %s", message),
	}
}

func errMissingKey(key string) exception.ApplicationError {
	return ErrMalformedResponse.WithCause(fmt.Errorf("missing %q", key))
}
