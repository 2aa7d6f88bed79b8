package service

import (
	"context"
	"time"

	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
)

const healthyStatus = "ok"

// ToolNamer lists the tools exposed by the server.
type ToolNamer interface {
	Names() []string
}

// ServerService answers the introspection tools. It never calls the upstream.
type ServerService struct {
	Tools   ToolNamer
	Name    string
	Version string
	Now     func() time.Time
}

func NewServerService(tools ToolNamer, name, version string) *ServerService {
	return &ServerService{
		Tools:   tools,
		Name:    name,
		Version: version,
		Now:     time.Now,
	}
}

func (s *ServerService) HealthCheck(_ context.Context) dto.HealthCheckResponse {
	return dto.HealthCheckResponse{
		Status:    healthyStatus,
		Message:   s.Name + " is running",
		Timestamp: s.Now(),
	}
}

func (s *ServerService) ServerInfo(_ context.Context) dto.ServerInfoResponse {
	tools := []string{}
	if s.Tools != nil {
		tools = s.Tools.Names()
	}

	return dto.ServerInfoResponse{
		ServerName: s.Name,
		Version:    s.Version,
		Tools:      tools,
		Timestamp:  s.Now(),
	}
}
