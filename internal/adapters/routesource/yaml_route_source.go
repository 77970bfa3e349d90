package routesource

import (
	"context"
	"eco-shipment-service/internal/domain"
	"eco-shipment-service/internal/platform/obs"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLRouteSource loads route edges and shipments from a YAML seed file.
//
// Unlike the programmatic AddRoute contract, file input is validated strictly:
// blank locations, non-positive distances, negative factors, and negative
// demands all fail the load. A bad seed file should stop startup, not produce
// a quietly malformed network.
type YAMLRouteSource struct {
	Path string
}

func NewYAMLRouteSource(path string) *YAMLRouteSource {
	return &YAMLRouteSource{Path: path}
}

type seedFile struct {
	Routes    []seedRoute    `yaml:"routes"`
	Shipments []seedShipment `yaml:"shipments"`
}

type seedRoute struct {
	Source         string  `yaml:"source"`
	Target         string  `yaml:"target"`
	Distance       float64 `yaml:"distance"`
	EmissionFactor float64 `yaml:"emission_factor"`
	CostFactor     float64 `yaml:"cost_factor"`
}

type seedShipment struct {
	ShipmentID int     `yaml:"shipment_id"`
	Demand     float64 `yaml:"demand"`
}

func (s *YAMLRouteSource) load() (*seedFile, error) {
	if s.Path == "" {
		return nil, errors.New("yaml route source: path must be non-empty")
	}

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("yaml route source: read %q: %w", s.Path, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("yaml route source: parse %q: %w", s.Path, err)
	}

	return &seed, nil
}

// LoadRoutes reads and validates every route edge in the seed file.
func (s *YAMLRouteSource) LoadRoutes(ctx context.Context) (_ []domain.RouteEdge, err error) {
	defer obs.Time(ctx, "routesource.LoadRoutes")(&err)

	seed, err := s.load()
	if err != nil {
		return nil, err
	}

	edges := make([]domain.RouteEdge, 0, len(seed.Routes))
	for i, r := range seed.Routes {
		if r.Source == "" || r.Target == "" {
			return nil, fmt.Errorf("yaml route source: route %d: source and target must be non-empty", i)
		}
		if r.Distance <= 0 {
			return nil, fmt.Errorf("yaml route source: route %d (%s -> %s): distance must be positive, got %v", i, r.Source, r.Target, r.Distance)
		}
		if r.EmissionFactor < 0 || r.CostFactor < 0 {
			return nil, fmt.Errorf("yaml route source: route %d (%s -> %s): factors must be non-negative", i, r.Source, r.Target)
		}

		edges = append(edges, domain.NewRouteEdge(r.Source, r.Target, r.Distance, r.EmissionFactor, r.CostFactor))
	}

	return edges, nil
}

// ListShipments reads and validates every shipment in the seed file.
func (s *YAMLRouteSource) ListShipments(ctx context.Context) (_ []domain.Shipment, err error) {
	defer obs.Time(ctx, "routesource.ListShipments")(&err)

	seed, err := s.load()
	if err != nil {
		return nil, err
	}

	shipments := make([]domain.Shipment, 0, len(seed.Shipments))
	for i, sh := range seed.Shipments {
		if sh.Demand < 0 {
			return nil, fmt.Errorf("yaml route source: shipment %d (id=%d): demand must be non-negative, got %v", i, sh.ShipmentID, sh.Demand)
		}
		shipments = append(shipments, domain.Shipment{ShipmentID: sh.ShipmentID, Demand: sh.Demand})
	}

	return shipments, nil
}
