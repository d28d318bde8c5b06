package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/pipeline-api/internal/platform/timeutil"
)

const (
	serviceName    = "FastAPI"
	serviceStatus  = "running"
	welcomeMessage = "Welcome to FastAPI Service"
)

// Register wires the root banner route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service banner",
		Tags:        []string{"service"},
	}, getHandler)
}

func getHandler(context.Context, *struct{}) (*RootOutput, error) {
	return &RootOutput{Body: RootData{
		Service:   serviceName,
		Status:    serviceStatus,
		Timestamp: timeutil.Now(),
		Message:   welcomeMessage,
	}}, nil
}
