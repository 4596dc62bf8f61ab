// Package common holds the helpers shared by every math provider module.
//
// Modules embed *MathOps and build results with Success, Failure and
// DomainFailure. Parameters arrive as decoded JSON, YAML or TOML, so the
// getters coerce every numeric representation those decoders produce:
//
//	x, ok := common.GetNumber(params, "x")
//	v, ok := common.GetVector(params, "line")   // [x, y, z] or {"x":..,"y":..,"z":..}
//	p, ok := common.GetPlane(params, "plane")   // [a, b, c, d] or {"a":..,"b":..,"c":..,"d":..}
//
// Domain errors from the formula packages keep their message and gain an
// error_kind field naming the sentinel, e.g. "zero_vector".
package common
