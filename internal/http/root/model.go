package root

// RootData models the service banner returned from the root path.
type RootData struct {
	Service   string `json:"service" doc:"Service name" example:"FastAPI"`
	Status    string `json:"status" doc:"Service status" example:"running"`
	Timestamp string `json:"timestamp" format:"date-time" doc:"Response time in UTC" example:"2026-01-02T15:04:05.000Z"`
	Message   string `json:"message" doc:"Welcome message" example:"Welcome to FastAPI Service"`
}

// RootOutput wraps the banner payload.
type RootOutput struct {
	Body RootData
}
