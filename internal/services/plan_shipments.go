package services

import (
	"context"
	"eco-shipment-service/internal/domain"
	"eco-shipment-service/internal/platform/obs"
	"eco-shipment-service/internal/ports"
	"errors"
	"fmt"
)

type PlanShipmentsRequest struct {
	Source          string
	Target          string
	VehicleCapacity float64
}

// ShipmentPlanReport combines the three path queries with the load split for
// the pending shipments. PathsByDimension always holds one entry per
// supported weight dimension; unreachable targets appear as not-found results
// rather than being omitted.
type ShipmentPlanReport struct {
	Source           string
	Target           string
	VehicleCapacity  float64
	PathsByDimension map[domain.WeightDimension]domain.PathResult
	LoadPlans        []domain.LoadPlan
}

// PlanShipments orchestrates a full planning pass: it queries the minimum
// path for every weight dimension between source and target, then splits the
// pending shipment demands across vehicles of the requested capacity.
func PlanShipments(
	ctx context.Context,
	req PlanShipmentsRequest,
	network *domain.RouteNetwork,
	shipments ports.ShipmentSource,
) (_ *ShipmentPlanReport, err error) {
	defer obs.Time(ctx, "services.PlanShipments")(&err)

	if network == nil {
		return nil, errors.New("plan shipments: network must be non-nil")
	}
	if req.VehicleCapacity <= 0 {
		return nil, fmt.Errorf("plan shipments: vehicle capacity must be positive, got %v", req.VehicleCapacity)
	}

	paths := make(map[domain.WeightDimension]domain.PathResult, len(domain.WeightDimensions))
	for _, dim := range domain.WeightDimensions {
		result, err := MinWeightPath(network, req.Source, req.Target, dim)
		if err != nil {
			return nil, fmt.Errorf("plan shipments: query %s path: %w", dim, err)
		}
		paths[dim] = result
	}

	listed, err := shipments.ListShipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan shipments: list shipments: %w", err)
	}

	demands := make([]float64, 0, len(listed))
	for _, s := range listed {
		if s.Demand < 0 {
			return nil, fmt.Errorf("plan shipments: shipment_id=%d has negative demand %v", s.ShipmentID, s.Demand)
		}
		demands = append(demands, s.Demand)
	}

	return &ShipmentPlanReport{
		Source:           req.Source,
		Target:           req.Target,
		VehicleCapacity:  req.VehicleCapacity,
		PathsByDimension: paths,
		LoadPlans:        PlanLoads(demands, req.VehicleCapacity),
	}, nil
}
