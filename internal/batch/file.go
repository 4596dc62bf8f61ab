package batch

import (
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// DefaultTolerance applies to Expectation.Values when Tolerance is zero
const DefaultTolerance = 1e-9

// File is a named list of calls
type File struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Calls []Call `json:"calls" yaml:"calls" toml:"calls"`
}

// Call is a single tool invocation
type Call struct {
	Name   string                 `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	ToolID string                 `json:"tool_id" yaml:"tool_id" toml:"tool_id"`
	Params map[string]interface{} `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
	Expect *Expectation           `json:"expect,omitempty" yaml:"expect,omitempty" toml:"expect,omitempty"`
}

// Expectation describes the result a call must produce to pass. Without
// one, a call passes when it succeeds.
type Expectation struct {
	// Success overrides the expected outcome; it defaults to false when
	// ErrorKind is set and true otherwise
	Success *bool `json:"success,omitempty" yaml:"success,omitempty" toml:"success,omitempty"`
	// ErrorKind must match the result's error_kind
	ErrorKind string `json:"error_kind,omitempty" yaml:"error_kind,omitempty" toml:"error_kind,omitempty"`
	// Values maps dotted data paths (result.x, roots.0) to numbers
	Values map[string]float64 `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
	// Equals maps dotted data paths to exact non-numeric values
	Equals map[string]interface{} `json:"equals,omitempty" yaml:"equals,omitempty" toml:"equals,omitempty"`
	// Tolerance is relative for magnitudes above one and absolute below
	Tolerance float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty" toml:"tolerance,omitempty"`
}

// Requests returns one ExecuteRequest per call
func (f *File) Requests() []types.ExecuteRequest {
	reqs := make([]types.ExecuteRequest, len(f.Calls))
	for i, c := range f.Calls {
		reqs[i] = types.ExecuteRequest{ToolID: c.ToolID, Params: c.Params}
	}
	return reqs
}

// FromRequests wraps plain requests in a File
func FromRequests(name string, reqs []types.ExecuteRequest) *File {
	f := &File{Name: name, Calls: make([]Call, len(reqs))}
	for i, r := range reqs {
		f.Calls[i] = Call{ToolID: r.ToolID, Params: r.Params}
	}
	return f
}

func (e *Expectation) wantSuccess() bool {
	if e == nil {
		return true
	}
	if e.Success != nil {
		return *e.Success
	}
	return e.ErrorKind == ""
}

func (e *Expectation) tolerance() float64 {
	if e == nil || e.Tolerance <= 0 {
		return DefaultTolerance
	}
	return e.Tolerance
}
