package main

import (
	"eco-shipment-service/internal/domain"
	"eco-shipment-service/internal/services"
	"fmt"
	"log"
	"strings"
)

// Demonstration entry point: builds the sample network, runs one path query
// per optimization dimension, and splits the sample demands across vehicles.
// Illustrative only; the stable surface is the in-process API under internal/.
func main() {
	if err := run(); err != nil {
		// Single broad boundary: internals return explicit errors and the
		// demo reports them here as a plain message.
		log.Printf("demo failed: %v", err)
	}
}

func run() error {
	network := domain.NewRouteNetwork()

	// (source, target, distance, emission factor, cost factor)
	network.AddRoute("A", "B", 100, 0.1, 1.0)
	network.AddRoute("B", "C", 50, 0.2, 0.5)
	network.AddRoute("A", "C", 140, 0.15, 0.85)
	network.AddRoute("C", "D", 60, 0.18, 0.9)

	for _, dim := range domain.WeightDimensions {
		result, err := services.MinWeightPath(network, "A", "D", dim)
		if err != nil {
			return fmt.Errorf("demo: query %s path: %w", dim, err)
		}

		if !result.Reachable {
			fmt.Printf("Minimum %s path: no route from A to D\n", dim)
			continue
		}
		fmt.Printf("Minimum %s path: %s, total %s: %g\n",
			dim, strings.Join(result.Locations, " -> "), dim, result.TotalWeight)
	}

	demands := []float64{30, 40, 20, 50, 30}
	capacity := 100.0

	plans := services.PlanLoads(demands, capacity)

	fmt.Printf("Load plans (capacity %g):\n", capacity)
	for i, plan := range plans {
		fmt.Printf("  vehicle %d: %v (total %g)\n", i+1, plan.Demands, plan.Total())
	}

	return nil
}
