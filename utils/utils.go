package utils

import "gonum.org/v1/gonum/floats"

// SortedPerm returns the permutation that orders x ascending. x itself is
// left untouched.
func SortedPerm(x []float64) []int {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	inds := make([]int, len(x))
	floats.Argsort(sorted, inds)
	return inds
}

// Reorder returns a copy of s arranged by perm, so out[i] = s[perm[i]].
func Reorder[T any](s []T, perm []int) []T {
	res := make([]T, len(perm))
	for i, p := range perm {
		res[i] = s[p]
	}
	return res
}
