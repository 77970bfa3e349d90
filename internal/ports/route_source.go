package ports

import (
	"context"
	"eco-shipment-service/internal/domain"
)

// Port: a boundary for obtaining route edges from a data source.
type RouteSource interface {
	// Return all route edges used to build the network.
	LoadRoutes(ctx context.Context) ([]domain.RouteEdge, error)
}
