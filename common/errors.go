package common

import "errors"

var (
	// ErrorInvalidInput reports malformed observation data: mismatched array
	// lengths, negative counts, censoring codes outside the accepted set, or
	// a zero population.
	ErrorInvalidInput = errors.New("reliability: invalid input data")

	// ErrorEmptySample reports that no usable observations remain after
	// validation and filtering.
	ErrorEmptySample = errors.New("reliability: empty sample")

	// ErrorUnknownFormula reports an unrecognized plotting position formula name.
	ErrorUnknownFormula = errors.New("reliability: unknown plotting position formula")

	// ErrorInvalidDirection reports a regression direction other than "x" or "y".
	ErrorInvalidDirection = errors.New("reliability: invalid regression direction")

	// ErrorDegenerateInterval reports a Turnbull unit whose containing points
	// carry zero probability mass, which would divide by zero.
	ErrorDegenerateInterval = errors.New("reliability: degenerate censoring interval")

	// ErrorNonConvergence reports that the optimizer stopped without
	// satisfying its convergence criterion.
	ErrorNonConvergence = errors.New("reliability: optimizer did not converge")
)
