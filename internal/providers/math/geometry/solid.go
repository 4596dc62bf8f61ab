package geometry

import (
	"context"

	"github.com/GriffinCanCode/formulary/internal/maths/solid"
	"github.com/GriffinCanCode/formulary/internal/providers/math/common"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// SolidOps handles surface areas, volumes and polyhedron topology
type SolidOps struct {
	*common.MathOps
}

// GetTools returns solid geometry tool definitions
func (s *SolidOps) GetTools() []types.Tool {
	radius := []types.Parameter{num("r", "Radius")}
	count := func(name, description string) types.Parameter {
		return types.Parameter{Name: name, Type: "integer", Description: description, Required: true}
	}
	return []types.Tool{
		{ID: "math.solid.cylinderSurface", Name: "Cylinder Surface Area", Description: "2πr(r + h)", Parameters: []types.Parameter{num("r", "Radius"), num("h", "Height")}, Returns: "number"},
		{ID: "math.solid.frustumVolume", Name: "Frustum Volume", Description: "h(S₁ + √(S₁S₂) + S₂)/3", Parameters: []types.Parameter{num("s1", "Lower base area"), num("s2", "Upper base area"), num("h", "Height")}, Returns: "number"},
		{ID: "math.solid.sphereSurface", Name: "Sphere Surface Area", Description: "4πr²", Parameters: radius, Returns: "number"},
		{ID: "math.solid.sphereVolume", Name: "Sphere Volume", Description: "4πr³/3", Parameters: radius, Returns: "number"},
		{
			ID:          "math.solid.euler",
			Name:        "Euler Characteristic",
			Description: "V - E + F, which must equal 2 for a convex polyhedron",
			Parameters:  []types.Parameter{count("v", "Vertices"), count("e", "Edges"), count("f", "Faces")},
			Returns:     "integer",
		},
	}
}

func (s *SolidOps) CylinderSurface(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.BinaryErr(params, "r", "h", solid.CylinderSurfaceArea)
}

func (s *SolidOps) FrustumVolume(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	xs, missing := common.Numbers(params, "s1", "s2", "h")
	if missing != "" {
		return common.Missing(missing)
	}
	return common.Number(solid.FrustumVolume(xs[0], xs[1], xs[2]))
}

func (s *SolidOps) SphereSurface(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "r", solid.SphereSurfaceArea)
}

func (s *SolidOps) SphereVolume(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.UnaryErr(params, "r", solid.SphereVolume)
}

// Euler verifies V - E + F = 2
func (s *SolidOps) Euler(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok1 := common.GetCount(params, "v")
	e, ok2 := common.GetCount(params, "e")
	f, ok3 := common.GetCount(params, "f")
	if !ok1 || !ok2 || !ok3 {
		return common.Failure("v, e and f parameters required (non-negative integers)")
	}
	chi, err := solid.EulerCharacteristic(v, e, f)
	if err != nil {
		return common.DomainFailure(err)
	}
	return common.Success(map[string]interface{}{"result": chi})
}
