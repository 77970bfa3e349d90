package api

import (
	"net/http"

	"eco-shipment-service/internal/api/handlers"
	"eco-shipment-service/internal/domain"
	"eco-shipment-service/internal/platform/metrics"
	"eco-shipment-service/internal/ports"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(network *domain.RouteNetwork, shipments ports.ShipmentSource, defaultCapacity float64) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	pathHandler := &handlers.PathHandler{Network: network}
	loadHandler := &handlers.LoadHandler{DefaultCapacity: defaultCapacity}
	routeHandler := &handlers.RouteHandler{Network: network}
	shipmentHandler := &handlers.ShipmentHandler{
		Network:         network,
		Shipments:       shipments,
		DefaultCapacity: defaultCapacity,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/routes", routeHandler.List)
	mux.HandleFunc("/paths/query", pathHandler.Query)
	mux.HandleFunc("/loads/plan", loadHandler.Plan)
	mux.HandleFunc("/shipments/plan", shipmentHandler.Plan)

	return requestIDMiddleware(loggingMiddleware(mux))
}
