package trig

import gomath "math"

// SinSumToProduct returns sin a + sin b = 2 sin((a+b)/2) cos((a-b)/2).
func SinSumToProduct(a, b float64) float64 {
	return 2 * gomath.Sin((a+b)/2) * gomath.Cos((a-b)/2)
}

// SinDiffToProduct returns sin a - sin b = 2 cos((a+b)/2) sin((a-b)/2).
func SinDiffToProduct(a, b float64) float64 {
	return 2 * gomath.Cos((a+b)/2) * gomath.Sin((a-b)/2)
}

// CosSumToProduct returns cos a + cos b = 2 cos((a+b)/2) cos((a-b)/2).
func CosSumToProduct(a, b float64) float64 {
	return 2 * gomath.Cos((a+b)/2) * gomath.Cos((a-b)/2)
}

// CosDiffToProduct returns cos a - cos b = -2 sin((a+b)/2) sin((a-b)/2).
func CosDiffToProduct(a, b float64) float64 {
	return -2 * gomath.Sin((a+b)/2) * gomath.Sin((a-b)/2)
}

// SinCosToSum expands sin a cos b into its two terms ½sin(a+b) and ½sin(a-b).
func SinCosToSum(a, b float64) (float64, float64) {
	return gomath.Sin(a+b) / 2, gomath.Sin(a-b) / 2
}

// SinSinToSum expands sin a sin b into ½cos(a-b) and -½cos(a+b).
func SinSinToSum(a, b float64) (float64, float64) {
	return gomath.Cos(a-b) / 2, -gomath.Cos(a+b) / 2
}

// CosCosToSum expands cos a cos b into ½cos(a-b) and ½cos(a+b).
func CosCosToSum(a, b float64) (float64, float64) {
	return gomath.Cos(a-b) / 2, gomath.Cos(a+b) / 2
}

// SinFromTanHalf returns sin x = 2t/(1+t²) for t = tan(x/2).
func SinFromTanHalf(t float64) float64 { return 2 * t / (1 + t*t) }

// CosFromTanHalf returns cos x = (1-t²)/(1+t²) for t = tan(x/2).
func CosFromTanHalf(t float64) float64 { return (1 - t*t) / (1 + t*t) }

// TanFromTanHalf returns tan x = 2t/(1-t²) for t = tan(x/2).
func TanFromTanHalf(t float64) (float64, error) {
	d := 1 - t*t
	if gomath.Abs(d) < undefinedTolerance {
		return 0, ErrUndefined
	}
	return 2 * t / d, nil
}

// Auxiliary is the amplitude-phase form R·sin(x + φ).
type Auxiliary struct {
	Amplitude float64 `json:"amplitude"`
	Phase     float64 `json:"phase"`
}

// AuxiliaryAngle rewrites a·sin x + b·cos x as R·sin(x + φ) with
// R = √(a²+b²) and φ = atan2(b, a).
func AuxiliaryAngle(a, b float64) (Auxiliary, error) {
	if a == 0 && b == 0 {
		return Auxiliary{}, ErrUndefined
	}
	return Auxiliary{Amplitude: gomath.Hypot(a, b), Phase: gomath.Atan2(b, a)}, nil
}

// InverseAuxiliaryAngle recovers the coefficients (a, b) of a·sin x + b·cos x.
func InverseAuxiliaryAngle(aux Auxiliary) (a, b float64) {
	return aux.Amplitude * gomath.Cos(aux.Phase), aux.Amplitude * gomath.Sin(aux.Phase)
}

// Period returns the smallest positive period 2π/|ω| of sin(ωx + φ).
func Period(omega float64) (float64, error) {
	if omega == 0 {
		return 0, ErrZeroFrequency
	}
	return 2 * gomath.Pi / gomath.Abs(omega), nil
}
