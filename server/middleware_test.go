package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/NITHIN-BHAT/MedGPT/config"
)

func TestRealIPMiddlewareForwardedFor(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")

	var seen string
	handler := RealIPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.RemoteAddr
	}))

	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "203.0.113.1" {
		t.Errorf("Expected first forwarded IP, got %q", seen)
	}
}

func TestRealIPMiddlewareNoHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	original := req.RemoteAddr

	var seen string
	handler := RealIPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.RemoteAddr
	}))

	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != original {
		t.Errorf("Expected RemoteAddr unchanged, got %q", seen)
	}
}

func TestRequestSizeMiddlewareBodyTooLarge(t *testing.T) {
	cfg := &config.Config{MaxRequestBody: 100, MaxHeaderSize: 1048576}

	handler := RequestSizeMiddleware(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/ask", strings.NewReader(strings.Repeat("a", 200)))
	req.Header.Set("Content-Length", strconv.Itoa(200))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", rr.Code)
	}
}

func TestRequestSizeMiddlewareAllowsSmallBody(t *testing.T) {
	cfg := &config.Config{MaxRequestBody: 1048576, MaxHeaderSize: 1048576}

	handler := RequestSizeMiddleware(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/ask", strings.NewReader("{}"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rr.Code)
	}
}

func TestGetTokenCost(t *testing.T) {
	testCases := []struct {
		path     string
		expected int64
	}{
		{"/", 1},
		{"/metrics", 0},
		{"/health", 5},
		{"/ask", 100},
		{"/profile_qa", 50},
		{"/brandmap_qa", 50},
		{"/summarize", 200},
		{"/debug/models", 20},
		{"/unknown", 20},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest("GET", tc.path, nil)
		if cost := getTokenCost(req); cost != tc.expected {
			t.Errorf("getTokenCost(%s) = %d, expected %d", tc.path, cost, tc.expected)
		}
	}
}

func TestRateLimiterExhaustion(t *testing.T) {
	rl := NewRateLimiter()
	bucket := rl.getBucket("198.51.100.7")

	// Drain the bucket, then the next expensive request must fail.
	bucket.TakeAvailable(bucket.Available())
	if taken := bucket.TakeAvailable(200); taken == 200 {
		t.Error("Expected drained bucket to refuse tokens")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter()
	rl.getBucket("198.51.100.8")

	// A fresh bucket is full, so cleanup should drop it.
	removed := rl.Cleanup()
	if removed != 1 {
		t.Errorf("Expected 1 bucket removed, got %d", removed)
	}

	rl.mu.RLock()
	remaining := len(rl.clients)
	rl.mu.RUnlock()
	if remaining != 0 {
		t.Errorf("Expected no buckets after cleanup, got %d", remaining)
	}
}

func TestRateLimitHandlerSetsHeaders(t *testing.T) {
	handler := RateLimitHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "198.51.100.9:1234"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-RateLimit-Limit") != "1000" {
		t.Errorf("Expected rate limit header, got %q", rr.Header().Get("X-RateLimit-Limit"))
	}
	if rr.Header().Get("X-RateLimit-Remaining") == "" {
		t.Error("Expected remaining tokens header")
	}
}
