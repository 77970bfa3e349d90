package dto

type PathQueryRequest struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Dimension string `json:"dimension"`
}

type PathQueryResponse struct {
	Source      string   `json:"source"`
	Target      string   `json:"target"`
	Dimension   string   `json:"dimension"`
	Path        []string `json:"path"`
	TotalWeight float64  `json:"total_weight"`
	Reachable   bool     `json:"reachable"`
}
