package probability

import "errors"

var (
	ErrInvalidProbability  = errors.New("probability: value must lie in [0, 1]")
	ErrEmptySampleSpace    = errors.New("probability: sample space must not be empty")
	ErrFavorableExceeds    = errors.New("probability: favorable outcomes exceed the sample space")
	ErrEmptyEvents         = errors.New("probability: event list must not be empty")
	ErrLengthMismatch      = errors.New("probability: input lengths differ")
	ErrZeroProbability     = errors.New("probability: conditioning event has zero probability")
	ErrProbabilitySum      = errors.New("probability: probabilities must sum to 1")
	ErrNegativeVariance    = errors.New("probability: variance must not be negative")
	ErrInsufficientData    = errors.New("probability: at least two data points are required")
	ErrZeroVariance        = errors.New("probability: x values must not all be equal")
	ErrNegativeObserved    = errors.New("probability: observed counts must not be negative")
	ErrNonPositiveExpected = errors.New("probability: expected counts must be positive")
	ErrInvalidPercentile   = errors.New("probability: percentile must lie in [0, 100]")
	ErrEmptySample         = errors.New("probability: sample must not be empty")
)
