package toolregistry

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
	"github.com/mark3labs/mcp-go/mcp"
)

// DecodeFunc turns raw tool arguments into the typed request of an endpoint.
type DecodeFunc func(args map[string]any) (any, error)

// Tool binds an advertised tool definition to the endpoint serving it.
type Tool struct {
	Definition mcp.Tool
	Decode     DecodeFunc
	Endpoint   endpoint.Endpoint
}

// Registry maps tool names to tools. It is filled once at startup and read-only afterwards.
type Registry struct {
	tools map[string]Tool
	order []string
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool. Registering a name twice replaces the earlier tool in place.
func (r *Registry) Register(tool Tool) {
	name := tool.Definition.Name
	if _, ok := r.tools[name]; !ok {
		r.order = append(r.order, name)
	}

	r.tools[name] = tool
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// Definitions returns the tool definitions in registration order.
func (r *Registry) Definitions() []mcp.Tool {
	defs := make([]mcp.Tool, len(r.order))
	for i, name := range r.order {
		defs[i] = r.tools[name].Definition
	}

	return defs
}

// Call decodes args and runs the named tool. Arguments that fail to decode never
// reach the endpoint.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, ErrUnknownTool(name)
	}

	req, err := tool.Decode(args)
	if err != nil {
		return nil, err
	}

	return tool.Endpoint(ctx, req)
}

func ErrUnknownTool(name string) exception.ApplicationError {
	return exception.ApplicationError{
		Kind:    exception.KindUnknownTool,
		Message: fmt.Sprintf("unknown tool: %s", name),
		Code:    mcp.INVALID_PARAMS,
	}
}
