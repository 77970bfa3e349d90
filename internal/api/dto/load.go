package dto

type LoadPlanRequest struct {
	Demands  []float64 `json:"demands"`
	Capacity float64   `json:"capacity"`
}

type LoadPlanEntry struct {
	Demands []float64 `json:"demands"`
	Total   float64   `json:"total"`
}

type LoadPlanResponse struct {
	Capacity  float64         `json:"capacity"`
	PlanCount int             `json:"plan_count"`
	Plans     []LoadPlanEntry `json:"plans"`
}
