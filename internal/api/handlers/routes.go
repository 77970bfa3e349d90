package handlers

import (
	"eco-shipment-service/internal/api/dto"
	"eco-shipment-service/internal/domain"
	"net/http"
)

type RouteHandler struct {
	Network *domain.RouteNetwork
}

// List returns every edge of the loaded route network, ordered by
// (source, target).
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	edges := h.Network.Edges()

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteResponse, 0, len(edges))}
	for _, e := range edges {
		res.Routes = append(res.Routes, dto.RouteResponse{
			Source:   e.Source,
			Target:   e.Target,
			Distance: e.Distance,
			Emission: e.Emission,
			Cost:     e.Cost,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
