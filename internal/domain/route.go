package domain

import "fmt"

// WeightDimension selects which edge attribute a shortest-path query minimizes.
type WeightDimension string

const (
	WeightDistance WeightDimension = "distance"
	WeightEmission WeightDimension = "emission"
	WeightCost     WeightDimension = "cost"
)

// WeightDimensions lists every supported dimension in report order.
var WeightDimensions = []WeightDimension{WeightDistance, WeightEmission, WeightCost}

// ParseWeightDimension converts external input into a WeightDimension.
func ParseWeightDimension(s string) (WeightDimension, error) {
	switch WeightDimension(s) {
	case WeightDistance, WeightEmission, WeightCost:
		return WeightDimension(s), nil
	default:
		return "", fmt.Errorf("parse weight dimension: %q is not one of distance, emission, cost", s)
	}
}

// RouteEdge is a directed route between two locations.
//
// Locations are opaque string identifiers with no attributes beyond identity.
// Emission and Cost are derived at construction time from per-unit-distance
// factors, so queries never need the raw factors again.
type RouteEdge struct {
	Source   string
	Target   string
	Distance float64
	Emission float64
	Cost     float64
}

// NewRouteEdge derives total emission and cost from per-unit-distance factors.
// Distance is expected to be positive; the constructor does not validate,
// matching AddRoute's permissive contract. File adapters validate at load time.
func NewRouteEdge(source, target string, distance, emissionFactor, costFactor float64) RouteEdge {
	return RouteEdge{
		Source:   source,
		Target:   target,
		Distance: distance,
		Emission: emissionFactor * distance,
		Cost:     costFactor * distance,
	}
}

// Weight returns the edge attribute for the given dimension.
// Unknown dimensions fall back to distance; callers are expected to have
// validated the dimension via ParseWeightDimension.
func (e RouteEdge) Weight(dim WeightDimension) float64 {
	switch dim {
	case WeightEmission:
		return e.Emission
	case WeightCost:
		return e.Cost
	default:
		return e.Distance
	}
}
