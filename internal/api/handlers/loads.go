package handlers

import (
	"eco-shipment-service/internal/api/dto"
	"eco-shipment-service/internal/domain"
	"eco-shipment-service/internal/platform/metrics"
	"eco-shipment-service/internal/services"
	"net/http"
)

type LoadHandler struct {
	DefaultCapacity float64
}

// Plan splits the posted demands into per-vehicle load plans.
func (h *LoadHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	defer r.Body.Close()

	var req dto.LoadPlanRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
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

	for _, d := range req.Demands {
		if d < 0 {
			writeError(w, r, http.StatusBadRequest, "demands must be non-negative")
			return
		}
	}

	plans := services.PlanLoads(req.Demands, capacity)
	metrics.LoadPlanSize.Observe(float64(len(plans)))

	writeJSON(w, r, http.StatusOK, dto.LoadPlanResponse{
		Capacity:  capacity,
		PlanCount: len(plans),
		Plans:     toLoadPlanEntries(plans),
	})
}

func toLoadPlanEntries(plans []domain.LoadPlan) []dto.LoadPlanEntry {
	entries := make([]dto.LoadPlanEntry, 0, len(plans))
	for _, p := range plans {
		entries = append(entries, dto.LoadPlanEntry{Demands: p.Demands, Total: p.Total()})
	}
	return entries
}
