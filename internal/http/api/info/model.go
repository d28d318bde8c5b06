package info

// InfoData describes the running service.
type InfoData struct {
	Service     string `json:"service" doc:"Service name" example:"FastAPI"`
	Version     string `json:"version" doc:"Service version" example:"1.0.0"`
	Environment string `json:"environment" doc:"Deployment environment" example:"development"`
	Timestamp   string `json:"timestamp" format:"date-time" doc:"Response time in UTC" example:"2026-01-02T15:04:05.000Z"`
}

// InfoOutput wraps the service information payload.
type InfoOutput struct {
	Body InfoData
}
