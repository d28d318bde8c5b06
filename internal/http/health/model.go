package health

// HealthData is the payload for the liveness probe.
type HealthData struct {
	Status    string `json:"status" doc:"Liveness status" example:"healthy"`
	Timestamp string `json:"timestamp" format:"date-time" doc:"Response time in UTC" example:"2026-01-02T15:04:05.000Z"`
}

// HealthOutput wraps the liveness payload.
type HealthOutput struct {
	Body HealthData
}
