// Package batch evaluates a file of tool invocations against any Executor.
//
// A batch file lists calls, each with a tool ID, params and an optional
// expectation. JSON, YAML and TOML are all accepted:
//
//	name: vector sanity
//	calls:
//	  - tool_id: math.space.cross
//	    params: {a: [1, 0, 0], b: [0, 1, 0]}
//	    expect:
//	      values: {result.z: 1}
//	  - tool_id: math.space.normalize
//	    params: {v: [0, 0, 0]}
//	    expect:
//	      error_kind: zero_vector
//
// The Runner executes the calls, optionally in parallel, and returns a
// Report in call order with pass/fail counts. Reports encode to the same
// three formats.
package batch
