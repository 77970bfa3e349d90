package dto

type ShipmentPlanRequest struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Capacity float64 `json:"capacity"`
}

type ShipmentPlanResponse struct {
	Source    string              `json:"source"`
	Target    string              `json:"target"`
	Capacity  float64             `json:"capacity"`
	Paths     []PathQueryResponse `json:"paths"`
	LoadPlans []LoadPlanEntry     `json:"load_plans"`
}
