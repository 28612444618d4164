package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
)

func TestTracing_StoresSpan(t *testing.T) {
	extracted := false
	r := chi.NewRouter()
	r.Use(Tracing(
		WithTracerName("test"),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			extracted = true
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	))

	var sawSpan bool
	r.Get("/{name}", func(w http.ResponseWriter, r *http.Request) {
		sawSpan = SpanFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index", nil))

	if !sawSpan {
		t.Fatal("expected SpanFromContext to return a span during the request")
	}
	if !extracted {
		t.Fatal("expected attribute extractor to be called")
	}
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestTracing_FilterSkipsTracing(t *testing.T) {
	mw := Tracing(WithFilter(func(r *http.Request) bool {
		return r.URL.Path != "/metrics"
	}))

	nextCalled := false
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if SpanFromContext(r.Context()) != nil {
			t.Fatal("expected no span when filter skips tracing")
		}
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !nextCalled {
		t.Fatal("expected next to be called")
	}
}

func TestSpanFromContext_NoSpan(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if SpanFromContext(req.Context()) != nil {
		t.Fatal("expected nil span when no span is stored")
	}
}

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)

	if sr.status != http.StatusOK {
		t.Errorf("default status = %d, want 200", sr.status)
	}
	sr.WriteHeader(http.StatusNotFound)
	sr.Write([]byte("missing"))
	sr.Flush()

	if sr.status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", sr.status)
	}
	if sr.bytes != len("missing") {
		t.Errorf("bytes = %d, want %d", sr.bytes, len("missing"))
	}
	if !rec.Flushed {
		t.Error("expected Flush to reach the underlying writer")
	}
	if sr.Unwrap() != rec {
		t.Error("Unwrap should return the wrapped writer")
	}
	if _, _, err := sr.Hijack(); err != http.ErrNotSupported {
		t.Errorf("Hijack() error = %v, want ErrNotSupported", err)
	}
}
