package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/pipeline-api/internal/platform/timeutil"
)

const statusHealthy = "healthy"

// Register wires the health check route into the provided API. The check
// has no downstream dependencies, so it reports healthy whenever the process
// can answer.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness probe",
		Tags:        []string{"service"},
	}, getHandler)
}

func getHandler(context.Context, *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: HealthData{Status: statusHealthy, Timestamp: timeutil.Now()}}, nil
}
