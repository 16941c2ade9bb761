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

func TestRedisCache(t *testing.T) {
	cfg := config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "cache"}

	newCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/v1/hotels", nil)
		rec := httptest.NewRecorder()
		return echo.New().NewContext(req, rec), rec
	}

	t.Run("serves a hit without calling the handler", func(t *testing.T) {
		c, rec := newCtx()
		key := cacheKey(cfg.Prefix, c)

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(key).SetVal(`{"items":[]}`)

		called := false
		handler := func(c echo.Context) error {
			called = true
			return c.String(http.StatusOK, "fresh")
		}
		require.NoError(t, NewRedisCache(cfg, rdb)(handler)(c))
		assert.False(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
		assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
	})

	t.Run("stores a 200 miss", func(t *testing.T) {
		c, rec := newCtx()
		key := cacheKey(cfg.Prefix, c)
		body := `{"items":[]}`

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetEx(key, []byte(body), cfg.TTL).SetVal("OK")

		handler := func(c echo.Context) error {
			return c.String(http.StatusOK, body)
		}
		require.NoError(t, NewRedisCache(cfg, rdb)(handler)(c))
		assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
		assert.Equal(t, body, rec.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("does not store non-200 responses", func(t *testing.T) {
		c, rec := newCtx()
		key := cacheKey(cfg.Prefix, c)

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(key).RedisNil()

		handler := func(c echo.Context) error {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		require.NoError(t, NewRedisCache(cfg, rdb)(handler)(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips non-GET requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/hotels", nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		rdb, mock := redismock.NewClientMock()
		require.NoError(t, NewRedisCache(cfg, rdb)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
