package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight result.
const corsMaxAge = 300

// CORS returns the cross-origin policy applied to every response: any origin,
// any standard method and any request header are allowed, and credentialed
// requests are permitted.
//
// Browsers reject a literal "*" origin on credentialed responses, so the
// request Origin is reflected instead of sending the wildcard.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, _ string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link", "Location", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
