package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"webwhisper/pkg/log"
)

func newTestMiddleware(perMin int) Middleware {
	return New(log.Init(log.ZapConfig{Level: "fatal", Encoding: log.EncodingConsole}), Config{
		RateLimitPerMin: perMin,
		CookieTTL:       30 * time.Minute,
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(10) // burst of 1

	r := gin.New()
	r.POST("/ask", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/ask", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", code)
	}
	if code := do("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other client: expected 200, got %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(0)

	r := gin.New()
	r.POST("/ask", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ask", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(0)

	var seen string
	r := gin.New()
	r.GET("/", mw.SessionCookie(), func(c *gin.Context) {
		seen = SessionID(c)
		c.Status(http.StatusOK)
	})

	t.Run("Issues a new id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if uuid.Validate(seen) != nil {
			t.Fatalf("expected a uuid session id, got %q", seen)
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != DefaultCookieName || cookies[0].Value != seen {
			t.Errorf("unexpected cookies: %+v", cookies)
		}
		if !cookies[0].HttpOnly {
			t.Error("session cookie must be HttpOnly")
		}
	})

	t.Run("Keeps a valid id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: id})
		r.ServeHTTP(httptest.NewRecorder(), req)

		if seen != id {
			t.Errorf("expected %s, got %s", id, seen)
		}
	})

	t.Run("Replaces a forged id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "../../etc"})
		r.ServeHTTP(httptest.NewRecorder(), req)

		if seen == "../../etc" || uuid.Validate(seen) != nil {
			t.Errorf("expected a fresh uuid, got %q", seen)
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := newTestMiddleware(0)

	var fromCtx string
	r := gin.New()
	r.Use(mw.RequestID(), mw.AccessLog())
	r.GET("/", func(c *gin.Context) {
		fromCtx = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if fromCtx != "req-123" {
		t.Errorf("expected request id in context, got %q", fromCtx)
	}
	if w.Header().Get("X-Request-ID") != "req-123" {
		t.Errorf("expected request id echoed, got %q", w.Header().Get("X-Request-ID"))
	}
}
