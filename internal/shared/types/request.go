package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" yaml:"tool_id" toml:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params" yaml:"params" toml:"params"`
}

// DiscoverRequest asks the registry for services relevant to a query
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit,omitempty"`
}

// DiscoverResponse lists services and tools ranked by relevance
type DiscoverResponse struct {
	Query    string    `json:"query"`
	Services []Service `json:"services"`
	Tools    []Tool    `json:"tools"`
}

// ServicesResponse is the body of GET /services
type ServicesResponse struct {
	Services []Service              `json:"services"`
	Stats    map[string]interface{} `json:"stats"`
}

// ToolsResponse is the body of GET /tools
type ToolsResponse struct {
	Tools []Tool `json:"tools"`
}

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error string `json:"error"`
}
