package endpoints

// Endpoints groups the endpoints served by the HTTP transport.
type Endpoints struct {
	ToolEndpoint ToolEndpoint
	RPCEndpoint  RPCEndpoint
}
