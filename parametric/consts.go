package parametric

const (
	DefaultFitMaxIterations  = 2000
	DefaultFitTolerance      = 1e-10
	DefaultConvergenceWindow = 50

	// starting mixture weights for limited-failure-population fits
	DefaultWeibullLFPWeight = 0.95 // Weibull rank regression only
	DefaultLFPWeight        = 0.5
)
