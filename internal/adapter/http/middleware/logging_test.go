package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func requestWithID(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chimiddleware.RequestIDKey, id))
}

func TestLoggingMiddlewareTagsRequestID(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggingMiddleware(zerolog.New(&buf))

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello"))
	}))

	req := requestWithID(httptest.NewRequest(http.MethodGet, "/v1/providers/p-1/ledger", nil), "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if line["request_id"] != "req-42" {
		t.Fatalf("expected request_id req-42, got %v", line["request_id"])
	}
	if line["status"] != float64(http.StatusOK) {
		t.Fatalf("expected status 200, got %v", line["status"])
	}
	if line["bytes"] != float64(len("hello")) {
		t.Fatalf("expected bytes %d, got %v", len("hello"), line["bytes"])
	}
	if line["level"] != "info" {
		t.Fatalf("expected info level, got %v", line["level"])
	}
}

func TestLoggingMiddlewareEscalatesServerErrors(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggingMiddleware(zerolog.New(&buf))

	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/providers", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if line["level"] != "error" {
		t.Fatalf("expected error level for 500, got %v", line["level"])
	}
}
