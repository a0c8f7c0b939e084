package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/creatorpulse/creatorpulse/internal/metrics"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return engine
}

// Requests rejected before any repository access must fail with a clear 400.
func TestConnectRejectsBadInput(t *testing.T) {
	engine := newTestEngine()
	engine.POST("/accounts", NewAccountAPI(nil).Connect)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed user_id",
			body: `{"user_id":"not-a-uuid","platform":"instagram","handle":"creator"}`,
		},
		{
			name: "unknown platform",
			body: `{"user_id":"7f9c24e5-2f85-4f36-9d1b-3c1a07a6b101","platform":"orkut","handle":"creator"}`,
		},
		{
			name: "missing handle",
			body: `{"user_id":"7f9c24e5-2f85-4f36-9d1b-3c1a07a6b101","platform":"instagram"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			engine.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if !strings.Contains(rec.Body.String(), "error") {
				t.Errorf("expected an error envelope, got %q", rec.Body.String())
			}
		})
	}
}

func TestScrapeUnknownPlatform(t *testing.T) {
	engine := newTestEngine()
	engine.POST("/scrape/:platform", NewScrapeAPI(map[string]*metrics.Pipeline{}).Scrape)

	body := `{"user_id":"7f9c24e5-2f85-4f36-9d1b-3c1a07a6b101","handle":"creator"}`
	req := httptest.NewRequest(http.MethodPost, "/scrape/myspace", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "unknown platform") {
		t.Errorf("body = %q, want an unknown-platform error", rec.Body.String())
	}
}
