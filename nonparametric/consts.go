package nonparametric

const (
	// DefaultTurnbullMaxIterations bounds the EM sweeps when the caller
	// supplies no budget.
	DefaultTurnbullMaxIterations = 100

	// DefaultTurnbullTolerance stops the EM loop once no point mass moves
	// more than this between sweeps.
	DefaultTurnbullTolerance = 1e-9
)
