package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/jsonrpc"
	"github.com/mark3labs/mcp-go/mcp"
)

// MaxBodyBytes bounds the size of a request envelope.
const MaxBodyBytes = 1 << 20

var ErrParse = exception.ApplicationError{
	Kind:    exception.KindProtocolEnvelope,
	Message: "parse error: body is not valid JSON",
	Code:    mcp.PARSE_ERROR,
}

var ErrInvalidRequest = exception.ApplicationError{
	Kind:    exception.KindProtocolEnvelope,
	Message: "invalid request: body must be a JSON-RPC 2.0 request object",
	Code:    mcp.INVALID_REQUEST,
}

var ErrBodyTooLarge = exception.ApplicationError{
	Kind:    exception.KindProtocolEnvelope,
	Message: fmt.Sprintf("invalid request: body exceeds %d bytes", MaxBodyBytes),
	Code:    mcp.INVALID_REQUEST,
}

// MakeHandlerFunc serves an endpoint through go-kit with the shared error encoder.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(
		ep,
		dec,
		enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRPCRequest reads one JSON-RPC envelope from the request body.
func DecodeRPCRequest(_ context.Context, r *http.Request) (interface{}, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, ErrInvalidRequest.WithCause(err)
	}

	if len(body) > MaxBodyBytes {
		return nil, ErrBodyTooLarge
	}

	if !json.Valid(body) {
		return nil, ErrParse
	}

	var req jsonrpc.Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, ErrInvalidRequest.WithCause(err)
	}

	return &req, nil
}
