package services

// How the visiting order was computed; recorded on the itinerary and used as
// a metric label.
const (
	MethodExact     = "exact"
	MethodHeuristic = "heuristic"
)

// DefaultMaxExactStops caps exhaustive search at 9 middle stops
// (9! = 362,880 permutations). It is a latency policy, not a derived bound,
// and can be overridden through configuration.
const DefaultMaxExactStops = 9

// Find the closed tour through indices 0..n-1 minimizing summed duration.
//
// Tours start and end at index 0 (the depot). When the number of non-depot
// stops exceeds maxExactStops the search delegates to NearestNeighbourTour,
// trading optimality for bounded work; the returned method string reports
// which path produced the tour.
//
// Permutations of the middle indices are enumerated in lexicographic order
// and compared with strict less-than, so the first enumerated tour wins ties.
// Running the search twice on the same matrix yields the identical tour.
func ExactTourByDuration(durations [][]float64, maxExactStops int) ([]int, string) {
	n := len(durations)
	if n <= 2 {
		if n <= 1 {
			return []int{0, 0}, MethodExact
		}
		return []int{0, 1, 0}, MethodExact
	}

	if maxExactStops <= 0 {
		maxExactStops = DefaultMaxExactStops
	}

	middle := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		middle = append(middle, i)
	}

	if len(middle) > maxExactStops {
		return NearestNeighbourTour(durations), MethodHeuristic
	}

	var (
		bestTour []int
		bestCost float64
	)

	perm := middle // starts sorted ascending, the lexicographic minimum
	for ok := true; ok; ok = nextPermutation(perm) {
		candidate := make([]int, 0, n+1)
		candidate = append(candidate, 0)
		candidate = append(candidate, perm...)
		candidate = append(candidate, 0)

		cost := TourDuration(durations, candidate)
		if bestTour == nil || cost < bestCost {
			bestTour = candidate
			bestCost = cost
		}
	}

	return bestTour, MethodExact
}

// TourDuration sums consecutive-leg costs of tour over the duration matrix.
func TourDuration(durations [][]float64, tour []int) float64 {
	total := 0.0
	for i := 0; i < len(tour)-1; i++ {
		total += durations[tour[i]][tour[i+1]]
	}
	return total
}

// nextPermutation rearranges s into its lexicographic successor in place.
// It returns false when s is already the final (descending) permutation.
func nextPermutation(s []int) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]

	for l, r := i+1, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
	return true
}
