package services

import "math"

// Build a closed tour over cost using a greedy nearest-neighbour algorithm.
//
// The algorithm minimizes immediate travel cost at each step. It does not
// attempt global optimization and exists as a bounded-time fallback for
// inputs too large for exhaustive search. The design prioritizes determinism
// and simplicity over optimality.
//
// The returned tour has length n+1, starts and ends at index 0, and visits
// every other index exactly once. The matrix diagonal is never read.
func NearestNeighbourTour(cost [][]float64) []int {
	n := len(cost)
	if n <= 1 {
		return []int{0, 0}
	}

	visited := make([]bool, n)
	visited[0] = true

	tour := make([]int, 1, n+1)
	tour[0] = 0

	current := 0
	for len(tour) < n {
		next := -1
		best := math.MaxFloat64

		// Scan in increasing index order; strict less-than means the
		// first index encountered wins ties, keeping output deterministic.
		for candidate := 1; candidate < n; candidate++ {
			if visited[candidate] {
				continue
			}
			if cost[current][candidate] < best {
				best = cost[current][candidate]
				next = candidate
			}
		}

		visited[next] = true
		tour = append(tour, next)
		current = next
	}

	return append(tour, 0)
}
