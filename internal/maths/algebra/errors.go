package algebra

import "errors"

var (
	ErrEmptySet          = errors.New("algebra: set must not be empty")
	ErrNonPositive       = errors.New("algebra: all values must be positive")
	ErrCauchyCondition   = errors.New("algebra: arguments do not satisfy the Cauchy equality condition")
	ErrInvalidBase       = errors.New("algebra: logarithm base must be positive and not 1")
	ErrInvalidArgument   = errors.New("algebra: logarithm argument must be positive")
	ErrZeroPrevious      = errors.New("algebra: base period value must not be zero")
	ErrDivideByZero      = errors.New("algebra: division by zero")
	ErrInvalidTermIndex  = errors.New("algebra: term index must be at least 1")
	ErrZeroRatio         = errors.New("algebra: geometric ratio must not be zero")
	ErrCoefficientLength = errors.New("algebra: coefficient count must match initial term count")
	ErrNegativeIndex     = errors.New("algebra: index must not be negative")
)
