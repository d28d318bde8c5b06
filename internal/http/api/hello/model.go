package hello

// HelloData models the response payload for the hello endpoint.
type HelloData struct {
	Message   string `json:"message" doc:"Greeting message" example:"Hello from FastAPI!"`
	Timestamp string `json:"timestamp" format:"date-time" doc:"Response time in UTC" example:"2026-01-02T15:04:05.000Z"`
}

// HelloOutput wraps the greeting payload.
type HelloOutput struct {
	Body HelloData
}
