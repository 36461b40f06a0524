package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"multimodal-chat/internal/middleware"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(perMin int) *gin.Engine {
		mw := middleware.New(&mockLogger{}, perMin)
		r := gin.New()
		r.GET("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("Allows Within Budget", func(t *testing.T) {
		r := newRouter(10)
		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("Rejects Above Budget", func(t *testing.T) {
		r := newRouter(2)
		var last int
		for i := 0; i < 4; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			r.ServeHTTP(w, req)
			last = w.Code
		}
		if last != http.StatusTooManyRequests {
			t.Errorf("expected 429 after burst exhausted, got %d", last)
		}
	})

	t.Run("Disabled When Zero", func(t *testing.T) {
		r := newRouter(0)
		for i := 0; i < 50; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("expected limiter disabled, got %d", w.Code)
			}
		}
	})
}
