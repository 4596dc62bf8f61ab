package batch

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/GriffinCanCode/formulary/internal/shared/types"
	"github.com/GriffinCanCode/formulary/internal/shared/utils"
)

// Report is the outcome of one batch run
type Report struct {
	RunID      string    `json:"run_id" yaml:"run_id" toml:"run_id"`
	Name       string    `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at" toml:"started_at"`
	DurationMs float64   `json:"duration_ms" yaml:"duration_ms" toml:"duration_ms"`
	Total      int       `json:"total" yaml:"total" toml:"total"`
	Passed     int       `json:"passed" yaml:"passed" toml:"passed"`
	Failed     int       `json:"failed" yaml:"failed" toml:"failed"`
	Outcomes   []Outcome `json:"outcomes" yaml:"outcomes" toml:"outcomes"`
}

// Outcome records a single call
type Outcome struct {
	Index      int           `json:"index" yaml:"index" toml:"index"`
	Name       string        `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	ToolID     string        `json:"tool_id" yaml:"tool_id" toml:"tool_id"`
	Passed     bool          `json:"passed" yaml:"passed" toml:"passed"`
	Result     *types.Result `json:"result,omitempty" yaml:"result,omitempty" toml:"result,omitempty"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
	Mismatches []string      `json:"mismatches,omitempty" yaml:"mismatches,omitempty" toml:"mismatches,omitempty"`
	DurationMs float64       `json:"duration_ms" yaml:"duration_ms" toml:"duration_ms"`
}

// OK reports whether every call passed
func (r *Report) OK() bool {
	return r.Failed == 0
}

func (r *Report) tally() {
	r.Total = len(r.Outcomes)
	r.Passed, r.Failed = 0, 0
	for _, o := range r.Outcomes {
		if o.Passed {
			r.Passed++
		} else {
			r.Failed++
		}
	}
}

// check compares a result with the expectation and returns every mismatch
func check(exp *Expectation, result *types.Result) []string {
	if result == nil {
		return []string{"no result"}
	}

	var out []string
	if want := exp.wantSuccess(); result.Success != want {
		msg := fmt.Sprintf("success: got %t, want %t", result.Success, want)
		if result.Error != nil {
			msg += " (" + *result.Error + ")"
		}
		out = append(out, msg)
	}
	if exp == nil {
		return out
	}

	if exp.ErrorKind != "" {
		got, _ := result.Data["error_kind"].(string)
		if got != exp.ErrorKind {
			out = append(out, fmt.Sprintf("error_kind: got %q, want %q", got, exp.ErrorKind))
		}
	}

	tol := exp.tolerance()
	for _, path := range sortedKeys(exp.Values) {
		want := exp.Values[path]
		raw, ok := lookup(result.Data, path)
		if !ok {
			out = append(out, fmt.Sprintf("%s: missing", path))
			continue
		}
		got, ok := utils.ToFloat(raw)
		if !ok {
			out = append(out, fmt.Sprintf("%s: got %v, want a number", path, raw))
			continue
		}
		if !approxEqual(got, want, tol) {
			out = append(out, fmt.Sprintf("%s: got %v, want %v (tolerance %g)", path, got, want, tol))
		}
	}

	for _, path := range sortedKeys(exp.Equals) {
		want := exp.Equals[path]
		raw, ok := lookup(result.Data, path)
		if !ok {
			out = append(out, fmt.Sprintf("%s: missing", path))
			continue
		}
		if !looselyEqual(raw, want) {
			out = append(out, fmt.Sprintf("%s: got %v, want %v", path, raw, want))
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// lookup walks a dotted path through maps and slices
func lookup(data map[string]interface{}, path string) (interface{}, bool) {
	var cur interface{} = data
	for _, seg := range strings.Split(path, ".") {
		switch v := cur.(type) {
		case map[string]interface{}:
			next, ok := v[seg]
			if !ok {
				return nil, false
			}
			cur = next
		default:
			rv := reflect.ValueOf(cur)
			if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
				return nil, false
			}
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= rv.Len() {
				return nil, false
			}
			cur = rv.Index(i).Interface()
		}
	}
	return cur, true
}

func approxEqual(got, want, tol float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return math.IsNaN(got) && math.IsNaN(want)
	}
	if math.IsInf(want, 0) {
		return got == want
	}
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}

// looselyEqual compares decoded values, treating all numeric types alike
func looselyEqual(got, want interface{}) bool {
	if g, ok := utils.ToFloat(got); ok {
		if w, ok := utils.ToFloat(want); ok {
			return g == w
		}
	}
	return reflect.DeepEqual(got, want)
}
