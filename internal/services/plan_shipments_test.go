package services

import (
	"context"
	"eco-shipment-service/internal/adapters/routesource"
	"eco-shipment-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanShipments(t *testing.T) {
	shipments := routesource.NewStaticRouteSource(nil, []domain.Shipment{
		{ShipmentID: 1, Demand: 30},
		{ShipmentID: 2, Demand: 40},
		{ShipmentID: 3, Demand: 20},
		{ShipmentID: 4, Demand: 50},
		{ShipmentID: 5, Demand: 30},
	})

	req := PlanShipmentsRequest{Source: "A", Target: "D", VehicleCapacity: 100}
	report, err := PlanShipments(context.Background(), req, sampleNetwork(), shipments)
	require.NoError(t, err)

	require.Len(t, report.PathsByDimension, 3)
	assert.Equal(t, []string{"A", "C", "D"}, report.PathsByDimension[domain.WeightCost].Locations)
	assert.Equal(t, []string{"A", "B", "C", "D"}, report.PathsByDimension[domain.WeightEmission].Locations)

	require.Len(t, report.LoadPlans, 2)
	assert.Equal(t, []float64{50, 40}, report.LoadPlans[0].Demands)
	assert.Equal(t, []float64{30, 30, 20}, report.LoadPlans[1].Demands)
}

func TestPlanShipmentsRejectsNonPositiveCapacity(t *testing.T) {
	shipments := routesource.NewStaticRouteSource(nil, nil)

	req := PlanShipmentsRequest{Source: "A", Target: "D", VehicleCapacity: 0}
	_, err := PlanShipments(context.Background(), req, sampleNetwork(), shipments)
	assert.Error(t, err)
}

func TestPlanShipmentsRejectsNegativeDemand(t *testing.T) {
	shipments := routesource.NewStaticRouteSource(nil, []domain.Shipment{
		{ShipmentID: 1, Demand: -5},
	})

	req := PlanShipmentsRequest{Source: "A", Target: "D", VehicleCapacity: 100}
	_, err := PlanShipments(context.Background(), req, sampleNetwork(), shipments)
	assert.Error(t, err)
}

func TestPlanShipmentsUnreachableTargetIsNotAnError(t *testing.T) {
	shipments := routesource.NewStaticRouteSource(nil, nil)

	req := PlanShipmentsRequest{Source: "D", Target: "A", VehicleCapacity: 100}
	report, err := PlanShipments(context.Background(), req, sampleNetwork(), shipments)
	require.NoError(t, err)

	for _, dim := range domain.WeightDimensions {
		assert.False(t, report.PathsByDimension[dim].Reachable)
	}
}
