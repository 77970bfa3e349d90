package services

import (
	"eco-shipment-service/internal/domain"
	"slices"
)

// PlanLoads partitions shipment demands into per-vehicle load plans using a
// descending greedy pass over a single running bin.
//
// Demands are sorted largest-first, then each demand is appended to the
// current bin if it fits within capacity; otherwise the current bin is closed
// and a new one is opened with that demand. Closed bins are never revisited
// for later, smaller demands — this is deliberately NOT full
// first-fit-decreasing, and the weaker packing is part of the planner's
// contract. Do not "fix" it to reconsider earlier bins.
//
// A single demand larger than capacity is placed alone in its own
// over-capacity plan with no error; see LoadPlan for the invariant.
//
// The input slice is not modified. Capacity is expected to be positive;
// callers validate at the boundary.
func PlanLoads(demands []float64, capacity float64) []domain.LoadPlan {
	if len(demands) == 0 {
		return []domain.LoadPlan{}
	}

	sorted := slices.Clone(demands)
	slices.SortFunc(sorted, func(a, b float64) int {
		if a > b {
			return -1
		}
		if a < b {
			return 1
		}
		return 0
	})

	plans := make([]domain.LoadPlan, 0, 4)

	var current []float64
	var currentTotal float64

	for _, demand := range sorted {
		if currentTotal+demand <= capacity {
			current = append(current, demand)
			currentTotal += demand
			continue
		}

		if len(current) > 0 {
			plans = append(plans, domain.LoadPlan{Demands: current})
		}
		current = []float64{demand}
		currentTotal = demand
	}

	if len(current) > 0 {
		plans = append(plans, domain.LoadPlan{Demands: current})
	}

	return plans
}
