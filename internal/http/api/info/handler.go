package info

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/pipeline-api/internal/platform/timeutil"
)

const (
	// ServiceName is reported in the info payload.
	ServiceName = "FastAPI"
	// Version is the reported service version.
	Version = "1.0.0"
)

// Register wires the info route into the provided API. The environment is
// captured once at registration and reported verbatim.
func Register(api huma.API, environment string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-info",
		Method:      http.MethodGet,
		Path:        "/api/info",
		Summary:     "Describe the running service",
		Tags:        []string{"api"},
	}, func(context.Context, *struct{}) (*InfoOutput, error) {
		return &InfoOutput{Body: InfoData{
			Service:     ServiceName,
			Version:     Version,
			Environment: environment,
			Timestamp:   timeutil.Now(),
		}}, nil
	})
}
