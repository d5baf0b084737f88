package server

import (
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"frontend/logger"
	"frontend/route"
)

const requestIDHeader = "X-Request-ID"

// statusWriter records the status code. When notFound is set, a 200 from
// the wrapped handler goes out as a 404.
type statusWriter struct {
	http.ResponseWriter
	status   int
	notFound bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status != 0 {
		return
	}
	if w.notFound && code == http.StatusOK {
		code = http.StatusNotFound
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// isPagePath reports whether go-app answers path with a rendered page
// rather than a resource.
func isPagePath(p string) bool {
	if strings.HasPrefix(p, "/web/") {
		return false
	}
	return path.Ext(p) == ""
}

// pageStatus keeps serving the app shell for unknown pages, so the client
// shows the not-found page, but with a 404 status.
func pageStatus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isPagePath(r.URL.Path) || route.Resolve(r.URL.Path) != route.NotFound {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(&statusWriter{ResponseWriter: w, notFound: true}, r)
	})
}

// instrument tags every request with an id, an access log line and, when
// tracer is set, a server span.
func instrument(tracer oteltrace.Tracer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := r.Context()
		var span oteltrace.Span
		if tracer != nil {
			ctx, span = tracer.Start(ctx, r.Method+" "+r.URL.Path,
				oteltrace.WithSpanKind(oteltrace.SpanKindServer),
				oteltrace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
					attribute.String("http.request_id", id),
				),
			)
			defer span.End()
		}

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r.WithContext(ctx))
		if sw.status == 0 {
			sw.status = http.StatusOK
		}

		if span != nil {
			span.SetAttributes(attribute.Int("http.status_code", sw.status))
			if sw.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(sw.status))
			}
		}

		logger.With(logger.LevelDebug, "request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
