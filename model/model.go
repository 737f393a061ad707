package model

// Censoring flags how a recorded time relates to the true failure time.
type Censoring int

const (
	// LeftCensored means the unit failed at some unknown time before the
	// recorded time.
	LeftCensored Censoring = -1
	// Observed means the recorded time is the exact failure time.
	Observed Censoring = 0
	// RightCensored means the unit was still working at the recorded time.
	RightCensored Censoring = 1
)

func (c Censoring) String() string {
	switch c {
	case LeftCensored:
		return "left-censored"
	case Observed:
		return "observed"
	case RightCensored:
		return "right-censored"
	}
	return "unknown"
}

// RiskSet is the canonical per-unique-time table shared by the
// non-parametric estimators. Rows are ordered by time, one row per
// distinct recorded time, censored-only times included.
type RiskSet struct {
	Times     []float64 // distinct recorded times, ascending
	NRisk     []float64 // units at risk just before each time
	NFailures []float64 // observed failures at each time
	NCensored []float64 // units right-censored at each time
	N         float64   // total population size
}

// Len returns the number of distinct time points in the table.
func (r *RiskSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Times)
}
