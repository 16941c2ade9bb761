// Package router registers the HTTP routes of the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/nkarimov/event-hotel-booking/internal/config"
	"github.com/nkarimov/event-hotel-booking/internal/handler"
	"github.com/nkarimov/event-hotel-booking/internal/middleware"
)

// RegisterHealth registers the unauthenticated liveness endpoint.
func RegisterHealth(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session endpoints under /v1/auth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)
}

// RegisterPublic registers the hotel catalog browse endpoints.  They
// require no token and are served through the Redis response cache.
func RegisterPublic(e *echo.Echo, h *handler.HotelHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/v1", middleware.NewRedisCache(cacheCfg, rdb))
	g.GET("/hotels", h.ListHotels)
	g.GET("/hotels/:id/rooms", h.ListRooms)
}

// RegisterBooking registers the booking and ticket endpoints.  All of
// them require a valid access token; the booking writes additionally
// pass the rate limiter.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, t *handler.TicketHandler,
	jwtSecret string, rlCfg config.RateLimitConfig, rdb *redis.Client) {

	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	g.GET("/ticket", t.GetTicket)
	g.GET("/booking", b.GetBooking)

	limited := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.NewFixedWindow(rlCfg, rdb),
	)
	limited.POST("/booking", b.CreateBooking)
	limited.PUT("/booking/:bookingId", b.TransferBooking)
}
