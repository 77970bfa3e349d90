package domain

// PathResult is the outcome of a shortest-path query.
//
// Unreachable targets are an expected outcome, not an error: Reachable is
// false, Locations is empty, and TotalWeight is zero. Encoding "no path" as an
// explicit flag keeps infinity sentinels out of downstream arithmetic.
type PathResult struct {
	// Locations is the path from source to target inclusive.
	Locations []string
	// TotalWeight is the path's total weight in the queried dimension.
	TotalWeight float64
	Reachable   bool
}
