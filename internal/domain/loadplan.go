package domain

// LoadPlan is one vehicle's assigned sequence of shipment demands.
//
// Plans are produced fresh per call and retain no state. The planner
// guarantees Total() <= capacity for every plan except the documented case of
// a single demand that alone exceeds capacity, which travels as its own
// over-capacity plan of size one.
type LoadPlan struct {
	Demands []float64
}

// Total returns the summed demand assigned to the vehicle.
func (p LoadPlan) Total() float64 {
	var sum float64
	for _, d := range p.Demands {
		sum += d
	}
	return sum
}
