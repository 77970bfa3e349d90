package domain

// Represents a single shipment handled by the system.
// A Shipment has a unique identifier and a non-negative demand quantity
// expressing how much vehicle capacity it consumes.
type Shipment struct {
	ShipmentID int
	Demand     float64
}
