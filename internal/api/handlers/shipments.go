package handlers

import (
	"eco-shipment-service/internal/api/dto"
	"eco-shipment-service/internal/domain"
	"eco-shipment-service/internal/ports"
	"eco-shipment-service/internal/services"
	"log"
	"net/http"
	"strings"
)

type ShipmentHandler struct {
	Network         *domain.RouteNetwork
	Shipments       ports.ShipmentSource
	DefaultCapacity float64
}

// Plan orchestrates a combined report: minimum paths for all three weight
// dimensions plus the load split of the pending shipments.
func (h *ShipmentHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	defer r.Body.Close()

	var req dto.ShipmentPlanRequest
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

	capacity := req.Capacity
	if capacity == 0 {
		capacity = h.DefaultCapacity
	}
	if capacity <= 0 {
		writeError(w, r, http.StatusBadRequest, "capacity must be positive")
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

	svcReq := services.PlanShipmentsRequest{
		Source:          source,
		Target:          target,
		VehicleCapacity: capacity,
	}

	report, err := services.PlanShipments(r.Context(), svcReq, h.Network, h.Shipments)
	if err != nil {
		log.Printf("plan shipments failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	paths := make([]dto.PathQueryResponse, 0, len(domain.WeightDimensions))
	for _, dim := range domain.WeightDimensions {
		p := report.PathsByDimension[dim]
		paths = append(paths, dto.PathQueryResponse{
			Source:      source,
			Target:      target,
			Dimension:   string(dim),
			Path:        p.Locations,
			TotalWeight: p.TotalWeight,
			Reachable:   p.Reachable,
		})
	}

	writeJSON(w, r, http.StatusOK, dto.ShipmentPlanResponse{
		Source:    source,
		Target:    target,
		Capacity:  capacity,
		Paths:     paths,
		LoadPlans: toLoadPlanEntries(report.LoadPlans),
	})
}
