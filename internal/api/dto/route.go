package dto

type RouteResponse struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Distance float64 `json:"distance"`
	Emission float64 `json:"emission"`
	Cost     float64 `json:"cost"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}
