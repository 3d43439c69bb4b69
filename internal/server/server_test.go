package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		store    HealthChecker
		wantCode int
	}{
		{name: "no store", store: nil, wantCode: http.StatusOK},
		{name: "reachable", store: pingFunc(func(context.Context) error { return nil }), wantCode: http.StatusOK},
		{name: "unreachable", store: pingFunc(func(context.Context) error { return errors.New("refused") }), wantCode: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(":0", tc.store, gin.TestMode, nil)

			resp := httptest.NewRecorder()
			s.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, tc.wantCode, resp.Code)
			require.NotContains(t, resp.Body.String(), "refused")
		})
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := New("127.0.0.1:0", nil, gin.TestMode, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
}

func TestCORS_Preflight(t *testing.T) {
	tests := []struct {
		name      string
		origins   []string
		origin    string
		wantAllow string
		wantCode  int
	}{
		{name: "any origin", origins: []string{"*"}, origin: "http://ui.example", wantAllow: "*", wantCode: http.StatusNoContent},
		{name: "listed origin", origins: []string{"http://ui.example"}, origin: "http://ui.example", wantAllow: "http://ui.example", wantCode: http.StatusNoContent},
		{name: "unlisted origin", origins: []string{"http://ui.example"}, origin: "http://evil.example", wantAllow: "", wantCode: http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(":0", nil, gin.TestMode, tc.origins)
			s.Engine.Group("/api").PUT("/events/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodOptions, "/api/events/evt-1", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			req.Header.Set("Access-Control-Request-Headers", "Content-Type")

			resp := httptest.NewRecorder()
			s.Engine.ServeHTTP(resp, req)

			require.Equal(t, tc.wantCode, resp.Code)
			require.Equal(t, tc.wantAllow, resp.Header().Get("Access-Control-Allow-Origin"))
			if tc.wantAllow != "" {
				require.Contains(t, resp.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
			}
		})
	}
}

func TestCORS_SimpleRequestCarriesHeader(t *testing.T) {
	s := New(":0", nil, gin.TestMode, []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://ui.example")
	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisabledWithoutOrigins(t *testing.T) {
	s := New(":0", nil, gin.TestMode, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://ui.example")
	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthHandler_MountedUnderPrefix(t *testing.T) {
	s := New(":0", pingFunc(func(context.Context) error { return nil }), gin.TestMode, nil)
	s.Engine.Group("/api").GET("/health", s.HealthHandler)

	for _, path := range []string{"/health", "/api/health"} {
		resp := httptest.NewRecorder()
		s.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, resp.Code, path)
	}
}
