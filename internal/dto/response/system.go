package response

// RouteResponse describes one registered route.
type RouteResponse struct {
	Endpoint string   `json:"endpoint"`
	Methods  []string `json:"methods"`
	Rule     string   `json:"rule"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
