// Package respond renders RFC 9457 problem documents for failures handled
// outside of huma operations: unknown routes, wrong methods and panics.
package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/pipeline-api/internal/platform/logging"
)

const (
	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"

	// SchemasPath is where huma serves the registry schemas.
	SchemasPath = "/schemas"

	msgNotFound          = "resource not found"
	msgInternalServerErr = "internal server error"
)

// problem mirrors huma.ErrorModel and adds the $schema link huma attaches to
// its own error bodies.
type problem struct {
	Schema string `json:"$schema,omitempty"`
	Title  string `json:"title,omitempty"`
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// NotFoundHandler answers unmatched routes with a 404 problem document.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, http.StatusNotFound, msgNotFound)
	}
}

// MethodNotAllowedHandler answers a known path requested with an unregistered
// method. The Allow header lists the methods the path does serve.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		writeProblem(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
	}
}

// Recoverer turns panics into 500 problem documents. http.ErrAbortHandler is
// re-panicked so net/http can abort the connection, and nothing is written
// when the handler already started the response.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				err, ok := rec.(error)
				if ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				fields := []zap.Field{zap.ByteString("stack", debug.Stack())}
				if rw.wroteHeader {
					applog.LogError(r.Context(), "panic after response started", err, fields...)
					return
				}
				applog.LogError(r.Context(), "panic recovered", err, fields...)
				writeProblem(rw, r, http.StatusInternalServerError, msgInternalServerErr)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// responseWriter records whether the status line has been sent.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	schema := schemaURL(r)
	body := problem{
		Schema: schema,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}

	var (
		payload     []byte
		contentType string
		err         error
	)
	switch selectFormat(r.Header.Get("Accept")) {
	case formatCBOR:
		contentType = contentTypeProblemCBOR
		payload, err = cbor.Marshal(body)
	default:
		contentType = contentTypeProblemJSON
		payload, err = marshalJSON(body)
	}
	if err != nil {
		applog.LogError(r.Context(), "failed to encode problem", err, zap.Int("status", status))
		http.Error(w, http.StatusText(status), status)
		return
	}

	logProblem(r, status, detail)

	h := w.Header()
	ensureVary(h, "Origin", "Accept")
	h.Set("Content-Type", contentType)
	h.Set("Link", fmt.Sprintf("<%s>; rel=\"describedBy\"", schema))
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		applog.LogError(r.Context(), "failed to write problem", err, zap.Int("status", status))
	}
}

// marshalJSON encodes v without HTML escaping and without a trailing newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func logProblem(r *http.Request, status int, detail string) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if status >= http.StatusInternalServerError {
		applog.LogError(r.Context(), detail, nil, fields...)
		return
	}
	applog.LogWarn(r.Context(), detail, fields...)
}

// schemaURL builds the absolute URL of the ErrorModel schema for r's host.
func schemaURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s/ErrorModel.json", scheme, r.Host, SchemasPath)
}

// ensureVary appends each value to Vary unless it is already listed,
// comparing case-insensitively across comma-separated entries.
func ensureVary(h http.Header, values ...string) {
	seen := make(map[string]struct{})
	for _, v := range h.Values("Vary") {
		for part := range strings.SplitSeq(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				seen[strings.ToLower(p)] = struct{}{}
			}
		}
	}
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		h.Add("Vary", v)
	}
}

// allowedMethods asks chi's routing tree which methods serve the request path.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	path := rctx.RoutePath
	if path == "" {
		path = r.URL.RawPath
	}
	if path == "" {
		path = r.URL.Path
	}
	if path == "" {
		path = "/"
	}

	candidates := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	var allowed []string
	for _, method := range candidates {
		if rctx.Routes.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
