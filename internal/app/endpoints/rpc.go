package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/app/dto"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/exception"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/jsonrpc"
	"github.com/ijalalfrz/flight-search-mcp-server/internal/pkg/logger"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	notificationPrefix = "notifications/"

	internalErrorMessage  = "internal error while running the tool"
	invalidRequestMessage = `invalid request: jsonrpc must be "2.0" and method is required`
)

// ToolCaller lists and runs the registered tools.
type ToolCaller interface {
	Definitions() []mcp.Tool
	Call(ctx context.Context, name string, args map[string]any) (any, error)
}

type RPCEndpoint struct {
	Handle endpoint.Endpoint
}

type initializeParams struct {
	ProtocolVersion string             `json:"protocolVersion"`
	ClientInfo      mcp.Implementation `json:"clientInfo"`
}

type initializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    serverCapabilities `json:"capabilities"`
	ServerInfo      mcp.Implementation `json:"serverInfo"`
}

type serverCapabilities struct {
	Tools toolCapabilities `json:"tools"`
}

type toolCapabilities struct {
	ListChanged bool `json:"listChanged"`
}

type listToolsResult struct {
	Tools []mcp.Tool `json:"tools"`
}

type callToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

func MakeRPCEndpoint(tools ToolCaller, info mcp.Implementation) RPCEndpoint {
	return RPCEndpoint{
		Handle: makeHandleEndpoint(tools, info),
	}
}

// makeHandleEndpoint dispatches one JSON-RPC envelope. It answers with a nil response
// for notifications and reports protocol failures inside the envelope, never as an error.
func makeHandleEndpoint(tools ToolCaller, info mcp.Implementation) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*jsonrpc.Request)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		if request.JSONRPC != jsonrpc.Version || request.Method == "" {
			return jsonrpc.NewError(request.ID, mcp.INVALID_REQUEST, invalidRequestMessage,
				dto.ErrorPayload{Kind: exception.KindProtocolEnvelope, Message: invalidRequestMessage}), nil
		}

		ctx = logger.WithValue(ctx, logger.RPCMethodKey, request.Method)

		if request.IsNotification() {
			slog.DebugContext(ctx, "notification received")

			return nil, nil
		}

		switch request.Method {
		case string(mcp.MethodInitialize):
			return initialize(ctx, request, info), nil
		case string(mcp.MethodPing):
			return jsonrpc.NewResult(request.ID, struct{}{}), nil
		case string(mcp.MethodToolsList):
			return jsonrpc.NewResult(request.ID, listToolsResult{Tools: tools.Definitions()}), nil
		case string(mcp.MethodToolsCall):
			return callTool(ctx, tools, request), nil
		}

		if strings.HasPrefix(request.Method, notificationPrefix) {
			return nil, nil
		}

		return jsonrpc.NewError(request.ID, mcp.METHOD_NOT_FOUND,
			fmt.Sprintf("method not found: %s", request.Method), nil), nil
	}
}

func initialize(ctx context.Context, request *jsonrpc.Request, info mcp.Implementation) *jsonrpc.Response {
	var params initializeParams
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, &params); err != nil {
			return invalidParams(request.ID, err)
		}
	}

	version := params.ProtocolVersion
	if version == "" {
		version = mcp.LATEST_PROTOCOL_VERSION
	}

	slog.InfoContext(ctx, "client initialized",
		slog.String("client", params.ClientInfo.Name),
		slog.String("client_version", params.ClientInfo.Version),
		slog.String("protocol_version", version))

	return jsonrpc.NewResult(request.ID, initializeResult{
		ProtocolVersion: version,
		Capabilities:    serverCapabilities{Tools: toolCapabilities{ListChanged: false}},
		ServerInfo:      info,
	})
}

func callTool(ctx context.Context, tools ToolCaller, request *jsonrpc.Request) *jsonrpc.Response {
	var params callToolParams
	if err := json.Unmarshal(request.Params, &params); err != nil {
		return invalidParams(request.ID, err)
	}

	if params.Name == "" {
		return invalidParams(request.ID, errors.New("tool name is required"))
	}

	ctx = logger.WithValue(ctx, logger.ToolNameKey, params.Name)

	result, err := tools.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		return toolFailure(ctx, request.ID, err)
	}

	body, err := json.Marshal(result)
	if err != nil {
		return toolFailure(ctx, request.ID, fmt.Errorf("encode tool result: %w", err))
	}

	return jsonrpc.NewResult(request.ID, mcp.NewToolResultText(string(body)))
}

// toolFailure reports an unknown tool as a protocol error and every other failure
// as a tool result flagged isError.
func toolFailure(ctx context.Context, id json.RawMessage, err error) *jsonrpc.Response {
	kind := exception.KindOf(err)

	var appErr exception.ApplicationError
	errors.As(err, &appErr)

	if kind == exception.KindUnknownTool {
		return jsonrpc.NewError(id, appErr.ErrorCode(), appErr.Message,
			dto.ErrorPayload{Kind: kind, Message: appErr.Message})
	}

	payload := dto.ErrorPayload{
		Kind:    kind,
		Message: appErr.Message,
		Field:   appErr.Field,
	}

	if kind == exception.KindInternal {
		slog.ErrorContext(ctx, "tool call failed", slog.String("error", err.Error()))

		payload.Message = internalErrorMessage
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return jsonrpc.NewError(id, mcp.INTERNAL_ERROR, internalErrorMessage, nil)
	}

	return jsonrpc.NewResult(id, mcp.NewToolResultError(string(body)))
}

func invalidParams(id json.RawMessage, err error) *jsonrpc.Response {
	message := fmt.Sprintf("invalid params: %s", err)

	return jsonrpc.NewError(id, mcp.INVALID_PARAMS, message,
		dto.ErrorPayload{Kind: exception.KindProtocolEnvelope, Message: message})
}
