package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkarimov/event-hotel-booking/internal/config"
)

func limiterContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/v1/booking", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set("user_id", uint64(1))
	return c, rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestFixedWindow(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled: true,
		Limit:   30,
		Window:  time.Minute,
		Prefix:  "rl",
	}
	const key = "rl:user:1"

	t.Run("first hit opens the window", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpire(key, cfg.Window).SetVal(true)

		c, rec := limiterContext()
		require.NoError(t, NewFixedWindow(cfg, rdb)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "30", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "29", rec.Header().Get("X-RateLimit-Remaining"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("within the limit", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetVal(30)

		c, rec := limiterContext()
		require.NoError(t, NewFixedWindow(cfg, rdb)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("over the limit", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetVal(31)

		c, rec := limiterContext()
		require.NoError(t, NewFixedWindow(cfg, rdb)(okHandler)(c))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"too_many_requests","retry_after":60}`, rec.Body.String())
	})

	t.Run("redis failure fails open", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetErr(assert.AnError)

		c, rec := limiterContext()
		require.NoError(t, NewFixedWindow(cfg, rdb)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("disabled limiter passes through", func(t *testing.T) {
		c, rec := limiterContext()
		mw := NewFixedWindow(config.RateLimitConfig{Enabled: false}, nil)
		require.NoError(t, mw(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCallerKey(t *testing.T) {
	t.Run("authenticated user", func(t *testing.T) {
		c, _ := limiterContext()
		assert.Equal(t, "user:1", callerKey(c))
	})

	t.Run("falls back to client ip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/hotels", nil)
		req.RemoteAddr = "192.0.2.7:54321"
		c := echo.New().NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "ip:192.0.2.7", callerKey(c))
	})
}
