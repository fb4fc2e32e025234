package response_models

type HealthResponse struct {
	Status   string            `json:"status"`
	Backends map[string]string `json:"backends"`
	Mail     string            `json:"mail"`
}
