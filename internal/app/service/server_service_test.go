//go:build unit

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
)

func TestServerService(t *testing.T) {
	s := NewServerService(staticNamer{"search_flights", "health_check"}, "Flight Search MCP Server", "1.0.0")
	s.Now = func() time.Time { return fixedNow }

	t.Run("health_check", func(t *testing.T) {
		want := dto.HealthCheckResponse{
			Status:    "ok",
			Message:   "Flight Search MCP Server is running",
			Timestamp: fixedNow,
		}

		if diff := cmp.Diff(want, s.HealthCheck(context.Background())); diff != "" {
			t.Fatalf("HealthCheck() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("server_info", func(t *testing.T) {
		want := dto.ServerInfoResponse{
			ServerName: "Flight Search MCP Server",
			Version:    "1.0.0",
			Tools:      []string{"search_flights", "health_check"},
			Timestamp:  fixedNow,
		}

		if diff := cmp.Diff(want, s.ServerInfo(context.Background())); diff != "" {
			t.Fatalf("ServerInfo() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("server_info_without_registry", func(t *testing.T) {
		bare := NewServerService(nil, "x", "0")

		if got := bare.ServerInfo(context.Background()).Tools; got == nil || len(got) != 0 {
			t.Fatalf("expected empty tool list, got %v", got)
		}
	})
}
