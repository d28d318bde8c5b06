package logging

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
// e.g. 00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01
var traceparentRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

var (
	projectIDOnce   sync.Once
	cachedProjectID string
)

// spanContext is the subset of a traceparent header that Cloud Logging understands.
type spanContext struct {
	traceID string
	spanID  string
	sampled bool
}

func parseTraceparent(header string) (spanContext, bool) {
	m := traceparentRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return spanContext{}, false
	}
	return spanContext{traceID: m[2], spanID: m[3], sampled: m[4] == "01"}, true
}

// resource returns the Cloud Trace resource name for the span in projectID.
func (s spanContext) resource(projectID string) string {
	return fmt.Sprintf("projects/%s/traces/%s", projectID, s.traceID)
}

func traceFields(header, projectID string) []zap.Field {
	if projectID == "" {
		return nil
	}
	sc, ok := parseTraceparent(header)
	if !ok {
		return nil
	}
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", sc.resource(projectID)),
		zap.String("logging.googleapis.com/spanId", sc.spanID),
		zap.Bool("logging.googleapis.com/trace_sampled", sc.sampled),
	}
}

func loggerWithTrace(base *zap.Logger, header, projectID, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	fields := traceFields(header, projectID)
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveProjectID reads the GCP project from the environment once.
func resolveProjectID() string {
	projectIDOnce.Do(func() {
		cachedProjectID = firstNonEmpty(
			os.Getenv("GOOGLE_CLOUD_PROJECT"),
			os.Getenv("GCP_PROJECT"),
			os.Getenv("GCLOUD_PROJECT"),
			os.Getenv("PROJECT_ID"),
		)
	})
	return cachedProjectID
}
