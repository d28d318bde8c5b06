package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/pipeline-api/internal/http/api/hello"
	"github.com/janisto/pipeline-api/internal/http/api/info"
	"github.com/janisto/pipeline-api/internal/http/health"
	"github.com/janisto/pipeline-api/internal/http/root"
	"github.com/janisto/pipeline-api/internal/platform/config"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, cfg config.Config) {
	root.Register(api)
	health.Register(api)
	hello.Register(api)
	info.Register(api, cfg.Environment)
}
