package routesource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestYAMLRouteSourceLoads(t *testing.T) {
	path := writeSeed(t, `
routes:
  - source: A
    target: B
    distance: 100
    emission_factor: 0.1
    cost_factor: 1.0
  - source: B
    target: C
    distance: 50
    emission_factor: 0.2
    cost_factor: 0.5

shipments:
  - shipment_id: 1
    demand: 30
  - shipment_id: 2
    demand: 40
`)

	source := NewYAMLRouteSource(path)

	edges, err := source.LoadRoutes(context.Background())
	require.NoError(t, err)
	require.Len(t, edges, 2)

	assert.Equal(t, "A", edges[0].Source)
	assert.Equal(t, "B", edges[0].Target)
	assert.InDelta(t, 10, edges[0].Emission, 1e-9)
	assert.InDelta(t, 100, edges[0].Cost, 1e-9)

	shipments, err := source.ListShipments(context.Background())
	require.NoError(t, err)
	require.Len(t, shipments, 2)
	assert.Equal(t, 1, shipments[0].ShipmentID)
	assert.Equal(t, 30.0, shipments[0].Demand)
}

func TestYAMLRouteSourceRejectsNonPositiveDistance(t *testing.T) {
	path := writeSeed(t, `
routes:
  - source: A
    target: B
    distance: 0
    emission_factor: 0.1
    cost_factor: 1.0
`)

	_, err := NewYAMLRouteSource(path).LoadRoutes(context.Background())
	assert.ErrorContains(t, err, "distance must be positive")
}

func TestYAMLRouteSourceRejectsBlankLocations(t *testing.T) {
	path := writeSeed(t, `
routes:
  - source: ""
    target: B
    distance: 10
`)

	_, err := NewYAMLRouteSource(path).LoadRoutes(context.Background())
	assert.ErrorContains(t, err, "source and target must be non-empty")
}

func TestYAMLRouteSourceRejectsNegativeDemand(t *testing.T) {
	path := writeSeed(t, `
shipments:
  - shipment_id: 1
    demand: -1
`)

	_, err := NewYAMLRouteSource(path).ListShipments(context.Background())
	assert.ErrorContains(t, err, "demand must be non-negative")
}

func TestYAMLRouteSourceMissingFile(t *testing.T) {
	_, err := NewYAMLRouteSource(filepath.Join(t.TempDir(), "missing.yaml")).LoadRoutes(context.Background())
	assert.Error(t, err)
}
