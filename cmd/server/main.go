package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/nkarimov/event-hotel-booking/internal/config"
	"github.com/nkarimov/event-hotel-booking/internal/database"
	"github.com/nkarimov/event-hotel-booking/internal/handler"
	"github.com/nkarimov/event-hotel-booking/internal/queue"
	"github.com/nkarimov/event-hotel-booking/internal/repository"
	"github.com/nkarimov/event-hotel-booking/internal/router"
	"github.com/nkarimov/event-hotel-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// nil when redis is unreachable; cache and rate limit turn off
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	store := repository.NewBookingStore(db)
	tickets := repository.NewTicketRepo(db)
	hotels := repository.NewHotelRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	bookings := service.NewBookingService(store, tickets)

	e := echo.New()
	e.HideBanner = true
	router.RegisterHealth(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens))
	router.RegisterPublic(e, handler.NewHotelHandler(hotels), config.LoadCacheConfig(), rdb)
	router.RegisterBooking(e, handler.NewBookingHandler(bookings), handler.NewTicketHandler(tickets),
		cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)

	// background audit-log consumer; reconnects on broker failure
	go func() {
		if err := queue.StartConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}
