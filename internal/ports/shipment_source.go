package ports

import (
	"context"
	"eco-shipment-service/internal/domain"
)

// Port: a boundary for retrieving Shipment entities from a data source.
type ShipmentSource interface {
	// Retrieve all shipments awaiting load planning.
	ListShipments(ctx context.Context) ([]domain.Shipment, error)
}
