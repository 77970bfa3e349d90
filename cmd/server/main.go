package main

import (
	"context"
	"eco-shipment-service/internal/adapters/routesource"
	"eco-shipment-service/internal/api"
	"eco-shipment-service/internal/config"
	"eco-shipment-service/internal/domain"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the YAML seed adapter behind the source ports, builds the route
// network once, and starts the HTTP server. The network is never mutated
// after startup, so handlers can query it concurrently.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/routes.yaml")
	port := config.Get("PORT", "8080")

	capacity, err := config.GetFloat("VEHICLE_CAPACITY", 100)
	if err != nil {
		log.Fatal(err)
	}
	if capacity <= 0 {
		log.Fatalf("VEHICLE_CAPACITY must be positive, got %v", capacity)
	}

	source := routesource.NewYAMLRouteSource(seedPath)

	network, err := buildNetwork(context.Background(), source)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Route network loaded: locations=%d edges=%d", len(network.Locations()), len(network.Edges()))

	router := api.NewRouter(network, source, capacity)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func buildNetwork(ctx context.Context, source *routesource.YAMLRouteSource) (*domain.RouteNetwork, error) {
	edges, err := source.LoadRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("build network: %w", err)
	}

	network := domain.NewRouteNetwork()
	for _, e := range edges {
		network.AddEdge(e)
	}

	return network, nil
}
