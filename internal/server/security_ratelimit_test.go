package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := SecurityLoggingMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = ip + ":1234"

	// Simulate requests up to the limit
	for i := 0; i < RateLimitPerWindow; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	// Next request should be blocked
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	// Verify detector state
	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()

	if count != RateLimitPerWindow+1 {
		t.Errorf("expected count %d, got %d", RateLimitPerWindow+1, count)
	}
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	detector.limit = 2

	ip := "192.168.1.101"
	if !detector.RecordRequest(ip) || !detector.RecordRequest(ip) {
		t.Fatal("requests within the limit should pass")
	}
	if detector.RecordRequest(ip) {
		t.Fatal("third request should be blocked")
	}

	detector.mu.Lock()
	detector.lastResetTime = time.Now().Add(-2 * RateWindow)
	detector.mu.Unlock()

	if !detector.RecordRequest(ip) {
		t.Error("request after the window should pass")
	}
}
