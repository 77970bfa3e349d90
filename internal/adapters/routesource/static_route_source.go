package routesource

import (
	"context"
	"eco-shipment-service/internal/domain"
	"slices"
)

// StaticRouteSource serves a fixed set of routes and shipments from memory.
// Used by tests and the demo binary in place of a seed file.
type StaticRouteSource struct {
	Routes    []domain.RouteEdge
	Shipments []domain.Shipment
}

func NewStaticRouteSource(routes []domain.RouteEdge, shipments []domain.Shipment) *StaticRouteSource {
	return &StaticRouteSource{Routes: routes, Shipments: shipments}
}

func (s *StaticRouteSource) LoadRoutes(ctx context.Context) ([]domain.RouteEdge, error) {
	return slices.Clone(s.Routes), nil
}

func (s *StaticRouteSource) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	return slices.Clone(s.Shipments), nil
}
