package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JunoAX/cafe-fausse/internal/api"
	"github.com/JunoAX/cafe-fausse/internal/flash"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		inbound  string
		wantSame bool
	}{
		{name: "reuses inbound", inbound: "abc-123", wantSame: true},
		{name: "mints when missing", inbound: ""},
		{name: "mints when too long", inbound: strings.Repeat("x", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromCtx string
			r := gin.New()
			r.Use(RequestID())
			r.GET("/", func(c *gin.Context) {
				fromGin, _ = GetRequestID(c)
				fromCtx = api.RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(api.RequestIDHeader, tt.inbound)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			echoed := w.Header().Get(api.RequestIDHeader)
			if echoed == "" || echoed != fromGin || echoed != fromCtx {
				t.Fatalf("ids disagree: header %q, gin %q, context %q", echoed, fromGin, fromCtx)
			}
			if tt.wantSame && echoed != tt.inbound {
				t.Errorf("request id = %q, want %q", echoed, tt.inbound)
			}
			if !tt.wantSame && echoed == tt.inbound {
				t.Errorf("request id %q was not replaced", echoed)
			}
		})
	}
}

func TestRequestLoggerLevels(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: "INFO"},
		{status: http.StatusSeeOther, wantLevel: "INFO"},
		{status: http.StatusNotFound, wantLevel: "WARN"},
		{status: http.StatusBadGateway, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		r := gin.New()
		r.Use(RequestID(), RequestLogger(logger))
		r.GET("/x", func(c *gin.Context) { c.Status(tt.status) })

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("status %d: log is not JSON: %v", tt.status, err)
		}
		if record["level"] != tt.wantLevel {
			t.Errorf("status %d logged at %v, want %s", tt.status, record["level"], tt.wantLevel)
		}
		if record["path"] != "/x" || record["request_id"] == "" {
			t.Errorf("status %d: record = %v", tt.status, record)
		}
	}
}

func TestFlashRoundTrip(t *testing.T) {
	service := flash.NewService("secret", "test", time.Minute)
	r := gin.New()
	r.Use(Flash(service, false, discardLogger()))
	r.POST("/submit", func(c *gin.Context) {
		if err := SetFlash(c, flash.Message{Kind: flash.KindSuccess, Text: "Saved"}); err != nil {
			t.Errorf("SetFlash() error = %v", err)
		}
		c.Redirect(http.StatusSeeOther, "/")
	})
	var got flash.Message
	var found bool
	r.GET("/", func(c *gin.Context) {
		got, found = GetFlash(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != flash.CookieName || !cookies[0].HttpOnly {
		t.Fatalf("POST cookies = %+v, want one http-only flash cookie", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !found || got.Text != "Saved" || got.Kind != flash.KindSuccess {
		t.Errorf("GetFlash() = %+v, %v", got, found)
	}
	cleared := w.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("GET cookies = %+v, want the flash cookie cleared", cleared)
	}
}

func TestFlashIgnoresForgedCookie(t *testing.T) {
	service := flash.NewService("secret", "test", time.Minute)
	forged, _ := flash.NewService("other", "test", time.Minute).Issue(flash.Message{Text: "forged"})

	r := gin.New()
	r.Use(Flash(service, false, discardLogger()))
	var found bool
	r.GET("/", func(c *gin.Context) {
		_, found = GetFlash(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flash.CookieName, Value: forged})
	r.ServeHTTP(httptest.NewRecorder(), req)

	if found {
		t.Error("forged flash was accepted")
	}
}

func TestSetFlashWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if err := SetFlash(c, flash.Message{Text: "x"}); err == nil {
		t.Error("SetFlash() without middleware error = nil")
	}
}

func TestNoStore(t *testing.T) {
	r := gin.New()
	r.GET("/admin", NoStore(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
}
