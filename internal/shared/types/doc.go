// Package types provides shared data structures for the formulary service.
//
// Core Types:
//   - Service: Provider definition with its tools
//   - Tool, Parameter: Tool definition as advertised to clients
//   - Context: Caller context for an execution
//   - Result: Standard tool result
//
// Request Types:
//   - ExecuteRequest: Single tool invocation
//   - DiscoverRequest, DiscoverResponse: Keyword service discovery
//   - ServicesResponse, ToolsResponse, ErrorResponse: API response bodies
//
// Example Usage:
//
//	req := types.ExecuteRequest{
//	    ToolID: "math.space.cosAngle",
//	    Params: map[string]interface{}{"a": []interface{}{1, 0, 0}, "b": []interface{}{0, 1, 0}},
//	}
package types
