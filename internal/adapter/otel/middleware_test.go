package otel

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestHTTPMiddlewareNamesSpanByRoute(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	r := chi.NewRouter()
	r.Use(HTTPMiddleware("codeguide-api", otelhttp.WithTracerProvider(tp)))
	r.Route("/api", func(r chi.Router) {
		r.Get("/tools/{id}", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	for _, id := range []string{"cursor", "aider"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/tools/"+id, http.NoBody))
	}

	spans := rec.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	for _, s := range spans {
		if s.Name() != "GET /api/tools/{id}" {
			t.Errorf("span name = %q, want route pattern", s.Name())
		}
	}
}

func TestHTTPMiddlewareUnroutedKeepsMethodName(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	h := HTTPMiddleware("codeguide-api", otelhttp.WithTracerProvider(tp))(http.NotFoundHandler())
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))

	spans := rec.Ended()
	if len(spans) != 1 || spans[0].Name() != "GET" {
		t.Fatalf("expected one span named GET, got %v", spans)
	}
}
