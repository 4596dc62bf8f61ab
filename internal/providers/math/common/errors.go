package common

import (
	"errors"

	"github.com/GriffinCanCode/formulary/internal/maths/algebra"
	"github.com/GriffinCanCode/formulary/internal/maths/analytic"
	"github.com/GriffinCanCode/formulary/internal/maths/calculus"
	"github.com/GriffinCanCode/formulary/internal/maths/combinatorics"
	"github.com/GriffinCanCode/formulary/internal/maths/probability"
	"github.com/GriffinCanCode/formulary/internal/maths/solid"
	"github.com/GriffinCanCode/formulary/internal/maths/space"
	"github.com/GriffinCanCode/formulary/internal/maths/triangle"
	"github.com/GriffinCanCode/formulary/internal/maths/trig"
)

// KindUnknown labels errors that match no formula sentinel.
const KindUnknown = "unknown"

// ErrNonFinite marks a formula whose result overflowed to an infinity or
// came out as NaN.
var ErrNonFinite = errors.New("result is not a finite number")

var errorKinds = []struct {
	err  error
	kind string
}{
	{algebra.ErrEmptySet, "empty_set"},
	{algebra.ErrNonPositive, "non_positive"},
	{algebra.ErrCauchyCondition, "cauchy_condition"},
	{algebra.ErrInvalidBase, "invalid_base"},
	{algebra.ErrInvalidArgument, "invalid_argument"},
	{algebra.ErrZeroPrevious, "zero_previous"},
	{algebra.ErrDivideByZero, "divide_by_zero"},
	{algebra.ErrInvalidTermIndex, "invalid_term_index"},
	{algebra.ErrZeroRatio, "zero_ratio"},
	{algebra.ErrCoefficientLength, "coefficient_length"},
	{algebra.ErrNegativeIndex, "negative_index"},

	{analytic.ErrInvalidEllipse, "invalid_ellipse"},
	{analytic.ErrInvalidHyperbola, "invalid_hyperbola"},
	{analytic.ErrInvalidParabola, "invalid_parabola"},
	{analytic.ErrInvalidEccentricity, "invalid_eccentricity"},
	{analytic.ErrDivideByZero, "divide_by_zero"},
	{analytic.ErrCoincidentPoints, "coincident_points"},
	{analytic.ErrVerticalLine, "vertical_line"},
	{analytic.ErrInvalidLine, "invalid_line"},

	{calculus.ErrDivideByZero, "divide_by_zero"},
	{calculus.ErrInvalidBase, "invalid_base"},
	{calculus.ErrLogDomain, "log_domain"},
	{calculus.ErrTangentUndefined, "tangent_undefined"},
	{calculus.ErrNonPositive, "non_positive"},
	{calculus.ErrEqualValues, "equal_values"},
	{calculus.ErrEmptyPoints, "empty_points"},
	{calculus.ErrNotIndeterminate, "not_indeterminate"},
	{calculus.ErrZeroDerivative, "zero_derivative"},
	{calculus.ErrMissingDerivatives, "missing_derivatives"},

	{combinatorics.ErrInvalidInput, "invalid_input"},
	{combinatorics.ErrEmptyOptions, "empty_options"},
	{combinatorics.ErrOverflow, "overflow"},

	{probability.ErrInvalidProbability, "invalid_probability"},
	{probability.ErrEmptySampleSpace, "empty_sample_space"},
	{probability.ErrFavorableExceeds, "favorable_exceeds"},
	{probability.ErrEmptyEvents, "empty_events"},
	{probability.ErrLengthMismatch, "length_mismatch"},
	{probability.ErrZeroProbability, "zero_probability"},
	{probability.ErrProbabilitySum, "probability_sum"},
	{probability.ErrNegativeVariance, "negative_variance"},
	{probability.ErrInsufficientData, "insufficient_data"},
	{probability.ErrZeroVariance, "zero_variance"},
	{probability.ErrNegativeObserved, "negative_observed"},
	{probability.ErrNonPositiveExpected, "non_positive_expected"},
	{probability.ErrInvalidPercentile, "invalid_percentile"},
	{probability.ErrEmptySample, "empty_sample"},

	{solid.ErrInvalidDimensions, "invalid_dimensions"},
	{solid.ErrEulerViolation, "euler_violation"},

	{space.ErrZeroVector, "zero_vector"},
	{space.ErrNotPerpendicular, "not_perpendicular"},
	{space.ErrNotCoplanar, "not_coplanar"},
	{space.ErrNotParallel, "not_parallel"},
	{space.ErrInvalidParam, "invalid_param"},

	{triangle.ErrNonPositiveSide, "non_positive_side"},
	{triangle.ErrNonPositiveAngle, "non_positive_angle"},
	{triangle.ErrAngleRange, "angle_range"},
	{triangle.ErrAngleSum, "angle_sum"},
	{triangle.ErrInconsistent, "inconsistent"},
	{triangle.ErrInequality, "inequality"},
	{triangle.ErrNegativeSquare, "negative_square"},
	{triangle.ErrDegenerate, "degenerate"},

	{trig.ErrUndefined, "undefined"},
	{trig.ErrOutOfRange, "out_of_range"},
	{trig.ErrZeroFrequency, "zero_frequency"},

	{ErrNonFinite, "non_finite"},
}

// ErrorKind names the formula sentinel wrapped by err.
func ErrorKind(err error) string {
	for _, ek := range errorKinds {
		if errors.Is(err, ek.err) {
			return ek.kind
		}
	}
	return KindUnknown
}
