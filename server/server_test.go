package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NITHIN-BHAT/MedGPT/config"
)

// stubHandler records which endpoint was hit.
type stubHandler struct {
	hit string
}

func (s *stubHandler) mark(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.hit = name
		w.WriteHeader(http.StatusOK)
	}
}

func (s *stubHandler) Home(w http.ResponseWriter, r *http.Request)        { s.mark("home")(w, r) }
func (s *stubHandler) Ask(w http.ResponseWriter, r *http.Request)         { s.mark("ask")(w, r) }
func (s *stubHandler) ProfileQA(w http.ResponseWriter, r *http.Request)   { s.mark("profile_qa")(w, r) }
func (s *stubHandler) BrandMapQA(w http.ResponseWriter, r *http.Request)  { s.mark("brandmap_qa")(w, r) }
func (s *stubHandler) Summarize(w http.ResponseWriter, r *http.Request)   { s.mark("summarize")(w, r) }
func (s *stubHandler) HealthCheck(w http.ResponseWriter, r *http.Request) { s.mark("health")(w, r) }
func (s *stubHandler) DebugModels(w http.ResponseWriter, r *http.Request) { s.mark("debug")(w, r) }

func testServerConfig() *config.Config {
	return &config.Config{
		Port:           "8000",
		Address:        "127.0.0.1",
		Env:            "test",
		LogLevel:       "info",
		MaxRequestBody: 1048576,
		MaxHeaderSize:  1048576,
	}
}

func TestRouteWiring(t *testing.T) {
	testCases := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/", "home"},
		{"POST", "/ask", "ask"},
		{"POST", "/profile_qa", "profile_qa"},
		{"POST", "/brandmap_qa", "brandmap_qa"},
		{"POST", "/summarize", "summarize"},
		{"GET", "/health", "health"},
		{"GET", "/debug/models", "debug"},
	}

	for _, tc := range testCases {
		stub := &stubHandler{}
		srv := NewServer(testServerConfig(), stub)

		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.RemoteAddr = "127.0.0.1:9999"
		rr := httptest.NewRecorder()
		srv.Router().ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("%s %s returned %d", tc.method, tc.path, rr.Code)
		}
		if stub.hit != tc.want {
			t.Errorf("%s %s routed to %q, expected %q", tc.method, tc.path, stub.hit, tc.want)
		}
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	srv := NewServer(testServerConfig(), &stubHandler{})

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /metrics, got %d", rr.Code)
	}
	if rr.Body.Len() == 0 {
		t.Error("Expected metrics payload")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := NewServer(testServerConfig(), &stubHandler{})

	req := httptest.NewRequest("GET", "/ask", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET /ask, got %d", rr.Code)
	}
}
