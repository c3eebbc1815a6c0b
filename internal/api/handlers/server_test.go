package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"planora.io/planora/internal/api/middleware"
	"planora.io/planora/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

const testSecret = "webhook-test-secret-0123456789abcdef"

// newTestRouter wires only the routes under test; database-backed
// services stay nil, so only paths that never reach them are exercised
// here.
func newTestRouter(s *Server) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	router.GET("/health/live", s.GetLiveness)
	router.POST("/hooks/thumbnails", s.PostThumbnailCallback)
	return router
}

func TestGetLiveness(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, testSecret)
	router := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestThumbnailCallbackRejectsMissingSecret(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, testSecret)
	router := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hooks/thumbnails",
		strings.NewReader(`{"src_bucket":"b","src_key":"k"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestThumbnailCallbackRejectsWrongSecret(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, testSecret)
	router := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hooks/thumbnails",
		strings.NewReader(`{"src_bucket":"b","src_key":"k"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(ProcessSecretHeader, "guess")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["code"] != "UNAUTHORIZED" {
		t.Errorf("code = %q, want UNAUTHORIZED", body["code"])
	}
}

func TestThumbnailCallbackRejectsMalformedPayload(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, testSecret)
	router := newTestRouter(s)

	for name, payload := range map[string]string{
		"not json":       "not-json",
		"missing bucket": `{"src_key":"k"}`,
		"missing key":    `{"src_bucket":"b"}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/hooks/thumbnails",
				strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(ProcessSecretHeader, testSecret)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if body["code"] != "PAYLOAD_INVALID" {
				t.Errorf("code = %q, want PAYLOAD_INVALID", body["code"])
			}
		})
	}
}
