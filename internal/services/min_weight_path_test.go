package services

import (
	"eco-shipment-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNetwork() *domain.RouteNetwork {
	n := domain.NewRouteNetwork()
	n.AddRoute("A", "B", 100, 0.1, 1.0)
	n.AddRoute("B", "C", 50, 0.2, 0.5)
	n.AddRoute("A", "C", 140, 0.15, 0.85)
	n.AddRoute("C", "D", 60, 0.18, 0.9)
	return n
}

func TestMinWeightPathEmission(t *testing.T) {
	result, err := MinWeightPath(sampleNetwork(), "A", "D", domain.WeightEmission)
	require.NoError(t, err)
	require.True(t, result.Reachable)

	// A-B-C-D emission = 100*0.1 + 50*0.2 + 60*0.18 = 30.8, beating
	// A-C-D = 140*0.15 + 60*0.18 = 31.8.
	assert.Equal(t, []string{"A", "B", "C", "D"}, result.Locations)
	assert.InDelta(t, 30.8, result.TotalWeight, 1e-9)
}

func TestMinWeightPathCost(t *testing.T) {
	result, err := MinWeightPath(sampleNetwork(), "A", "D", domain.WeightCost)
	require.NoError(t, err)
	require.True(t, result.Reachable)

	assert.Equal(t, []string{"A", "C", "D"}, result.Locations)
	assert.InDelta(t, 173.0, result.TotalWeight, 1e-9)
}

func TestMinWeightPathDistance(t *testing.T) {
	result, err := MinWeightPath(sampleNetwork(), "A", "D", domain.WeightDistance)
	require.NoError(t, err)
	require.True(t, result.Reachable)

	// A-C-D = 200 beats A-B-C-D = 210.
	assert.Equal(t, []string{"A", "C", "D"}, result.Locations)
	assert.InDelta(t, 200, result.TotalWeight, 1e-9)
}

func TestMinWeightPathUnreachable(t *testing.T) {
	// D has no outgoing edges, so D -> A has no route.
	result, err := MinWeightPath(sampleNetwork(), "D", "A", domain.WeightDistance)
	require.NoError(t, err)

	assert.False(t, result.Reachable)
	assert.Empty(t, result.Locations)
	assert.Zero(t, result.TotalWeight)
}

func TestMinWeightPathSourceEqualsTarget(t *testing.T) {
	result, err := MinWeightPath(sampleNetwork(), "A", "A", domain.WeightCost)
	require.NoError(t, err)
	require.True(t, result.Reachable)

	assert.Equal(t, []string{"A"}, result.Locations)
	assert.Zero(t, result.TotalWeight)
}

func TestMinWeightPathUnknownLocation(t *testing.T) {
	_, err := MinWeightPath(sampleNetwork(), "A", "Z", domain.WeightDistance)
	assert.Error(t, err)

	_, err = MinWeightPath(sampleNetwork(), "Z", "A", domain.WeightDistance)
	assert.Error(t, err)
}

func TestMinWeightPathInvalidDimension(t *testing.T) {
	_, err := MinWeightPath(sampleNetwork(), "A", "D", domain.WeightDimension("fuel"))
	assert.Error(t, err)
}

func TestMinWeightPathPrefersCheaperDetour(t *testing.T) {
	// Direct edge exists but the two-hop detour is cheaper.
	n := domain.NewRouteNetwork()
	n.AddRoute("X", "Y", 10, 1, 1)
	n.AddRoute("X", "M", 3, 1, 1)
	n.AddRoute("M", "Y", 3, 1, 1)

	result, err := MinWeightPath(n, "X", "Y", domain.WeightDistance)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "M", "Y"}, result.Locations)
	assert.InDelta(t, 6, result.TotalWeight, 1e-9)
}
