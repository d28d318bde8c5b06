package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/pipeline-api/internal/platform/timeutil"
)

const greeting = "Hello from FastAPI!"

// Register wires hello routes into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/api/hello",
		Summary:     "Return a greeting",
		Tags:        []string{"api"},
	}, getHandler)
}

func getHandler(context.Context, *struct{}) (*HelloOutput, error) {
	return &HelloOutput{Body: HelloData{Message: greeting, Timestamp: timeutil.Now()}}, nil
}
