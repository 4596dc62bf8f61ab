package utilities

import (
	"context"
	gomath "math"

	"github.com/GriffinCanCode/formulary/internal/maths/trig"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// ConversionsOps handles angle unit conversions
type ConversionsOps struct {
	*common.MathOps
}

// GetTools returns conversion tool definitions
func (c *ConversionsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.radians",
			Name:        "Degrees to Radians",
			Description: "Convert degrees to radians",
			Parameters: []types.Parameter{
				{Name: "degrees", Type: "number", Description: "Angle in degrees", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.degrees",
			Name:        "Radians to Degrees",
			Description: "Convert radians to degrees",
			Parameters: []types.Parameter{
				{Name: "radians", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.normalizeRadians",
			Name:        "Normalize Radians",
			Description: "Reduce an angle into [0, 2π)",
			Parameters: []types.Parameter{
				{Name: "radians", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.normalizeDegrees",
			Name:        "Normalize Degrees",
			Description: "Reduce an angle into [0, 360)",
			Parameters: []types.Parameter{
				{Name: "degrees", Type: "number", Description: "Angle in degrees", Required: true},
			},
			Returns: "number",
		},
	}
}

func normalize(x, period float64) float64 {
	r := gomath.Mod(x, period)
	if r < 0 {
		r += period
	}
	if r >= period {
		r = 0
	}
	return r
}

// DegreesToRadians converts degrees to radians
func (c *ConversionsOps) DegreesToRadians(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "degrees", trig.DegToRad)
}

// RadiansToDegrees converts radians to degrees
func (c *ConversionsOps) RadiansToDegrees(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "radians", trig.RadToDeg)
}

// NormalizeRadians maps an angle into [0, 2π)
func (c *ConversionsOps) NormalizeRadians(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "radians", func(x float64) float64 { return normalize(x, 2*gomath.Pi) })
}

// NormalizeDegrees maps an angle into [0, 360)
func (c *ConversionsOps) NormalizeDegrees(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Unary(params, "degrees", func(x float64) float64 { return normalize(x, 360) })
}
