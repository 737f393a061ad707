package nonparametric

import (
	"math"

	"github.com/veleda/reliability-algorithms/common"
)

// SuccessRun gives the reliability demonstrated when n units complete a test
// with zero failures: R = (1 - confidence)^(1/n).
func SuccessRun(n int, confidence float64) (float64, error) {
	if n < 1 {
		return 0, common.ErrorInvalidInput
	}
	if confidence <= 0 || confidence >= 1 {
		return 0, common.ErrorInvalidInput
	}
	return math.Pow(1-confidence, 1/float64(n)), nil
}
