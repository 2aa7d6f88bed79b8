//go:build unit

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/jsonrpc"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRPCRequest(t *testing.T) {
	decode := func(body string, wantMethod string, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))

			got, err := DecodeRPCRequest(context.Background(), req)
			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, wantMethod, got.(*jsonrpc.Request).Method)
		}
	}

	t.Run("valid", decode(`{"jsonrpc":"2.0","id":1,"method":"ping"}`, "ping", nil))
	t.Run("not_json", decode(`{"jsonrpc":`, "", ErrParse))
	t.Run("batch_is_rejected", decode(`[{"jsonrpc":"2.0","id":1,"method":"ping"}]`, "", ErrInvalidRequest))
	t.Run("method_not_string", decode(`{"jsonrpc":"2.0","id":1,"method":5}`, "", ErrInvalidRequest))
	t.Run("too_large", decode(`"`+strings.Repeat("a", MaxBodyBytes)+`"`, "", ErrBodyTooLarge))
}

func TestRPCResponse(t *testing.T) {
	t.Run("notification_is_accepted", func(t *testing.T) {
		rec := httptest.NewRecorder()

		require.NoError(t, RPCResponse(context.Background(), rec, nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("response_is_encoded", func(t *testing.T) {
		rec := httptest.NewRecorder()

		resp := jsonrpc.NewResult(json.RawMessage(`7`), map[string]string{"ok": "yes"})
		require.NoError(t, RPCResponse(context.Background(), rec, resp))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"jsonrpc":"2.0","id":7,"result":{"ok":"yes"}}`, rec.Body.String())
	})
}

func TestErrorResponse(t *testing.T) {
	errorResponse := func(err error, wantCode int, wantKind exception.Kind) func(t *testing.T) {
		return func(t *testing.T) {
			rec := httptest.NewRecorder()

			ErrorResponse(context.Background(), err, rec)

			assert.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				ID    json.RawMessage `json:"id"`
				Error struct {
					Code int `json:"code"`
					Data struct {
						Kind exception.Kind `json:"kind"`
					} `json:"data"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "null", string(resp.ID))
			assert.Equal(t, wantCode, resp.Error.Code)
			assert.Equal(t, wantKind, resp.Error.Data.Kind)
		}
	}

	t.Run("parse_error", errorResponse(ErrParse, mcp.PARSE_ERROR, exception.KindProtocolEnvelope))
	t.Run("invalid_request", errorResponse(ErrInvalidRequest, mcp.INVALID_REQUEST, exception.KindProtocolEnvelope))
	t.Run("unexpected", errorResponse(errors.New("boom"), mcp.INTERNAL_ERROR, exception.KindInternal))
}

func TestRequestID(t *testing.T) {
	var seen string

	handler := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(logger.RequestIDKey).(string)
	}))

	t.Run("propagates_header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		req.Header.Set("X-Request-Id", "req-1")

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", seen)
		assert.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))
	})

	t.Run("generates_id", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-Id"))
	})
}

func TestRecoverer(t *testing.T) {
	handler := Recoverer(slog.New(slog.NewTextHandler(io.Discard, nil)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":-32603`)
}
