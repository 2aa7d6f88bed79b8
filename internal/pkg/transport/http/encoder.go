package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/jsonrpc"
	"github.com/mark3labs/mcp-go/mcp"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", contentTypeJSON)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// RPCResponse encodes a JSON-RPC response. A nil response acknowledges a notification.
func RPCResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	if rpcResp, ok := response.(*jsonrpc.Response); !ok || rpcResp == nil {
		w.WriteHeader(http.StatusAccepted)

		return nil
	}

	return ResponseWithBody(ctx, w, response)
}

// ErrorResponse encodes a failure that happened outside the dispatcher as a JSON-RPC
// error envelope with a null id.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr  exception.ApplicationError
		code    = mcp.INTERNAL_ERROR
		message = "internal error"
	)

	if errors.As(err, &appErr) && appErr.Code != 0 {
		code = appErr.Code
		message = appErr.Message
	} else {
		slog.ErrorContext(ctx, "request failed", slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", contentTypeJSON)
	respWriter.WriteHeader(http.StatusOK)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(jsonrpc.NewError(nil, code, message, dto.ErrorPayload{
		Kind:    exception.KindOf(err),
		Message: message,
	}))
}
