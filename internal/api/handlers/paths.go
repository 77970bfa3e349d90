package handlers

import (
	"eco-shipment-service/internal/api/dto"
	"eco-shipment-service/internal/domain"
	"eco-shipment-service/internal/platform/metrics"
	"eco-shipment-service/internal/services"
	"log"
	"net/http"
	"strings"
)

type PathHandler struct {
	Network *domain.RouteNetwork
}

// Query answers a minimum-weight path query for a chosen weight dimension.
// An unreachable target is a successful response with reachable=false, not an
// HTTP error: absence of a path is an expected domain outcome.
func (h *PathHandler) Query(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	defer r.Body.Close()

	var req dto.PathQueryRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	source := strings.TrimSpace(req.Source)
	target := strings.TrimSpace(req.Target)
	if source == "" || target == "" {
		writeError(w, r, http.StatusBadRequest, "source and target are required")
		return
	}

	dim, err := domain.ParseWeightDimension(strings.TrimSpace(req.Dimension))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "dimension must be one of distance, emission, cost")
		return
	}

	if !h.Network.HasLocation(source) {
		writeError(w, r, http.StatusNotFound, "unknown source location")
		return
	}
	if !h.Network.HasLocation(target) {
		writeError(w, r, http.StatusNotFound, "unknown target location")
		return
	}

	result, err := services.MinWeightPath(h.Network, source, target, dim)
	if err != nil {
		log.Printf("path query failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.PathQueries.WithLabelValues(string(dim), metrics.PathQueryOutcome(result.Reachable)).Inc()

	writeJSON(w, r, http.StatusOK, dto.PathQueryResponse{
		Source:      source,
		Target:      target,
		Dimension:   string(dim),
		Path:        result.Locations,
		TotalWeight: result.TotalWeight,
		Reachable:   result.Reachable,
	})
}
