package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nkarimov/event-hotel-booking/internal/model"
	"github.com/nkarimov/event-hotel-booking/internal/queue"
	"github.com/nkarimov/event-hotel-booking/internal/service"
)

// BookingHandler exposes the booking operations.  All routes sit
// behind JWTAuth, so the caller identity is always the user_id claim.
type BookingHandler struct {
	Bookings *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	if bookings == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings}
}

type bookingResp struct {
	ID   uint64     `json:"id"`
	Room model.Room `json:"Room"`
}

// GetBooking handles GET /v1/booking.  It returns the caller's current
// booking with its room, or 404 when none exists.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	b, room, err := h.Bookings.GetCurrentBooking(c.Request().Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, bookingResp{ID: b.ID, Room: room})
}

// CreateBooking handles POST /v1/booking.  The body carries the target
// room id; the response is the new booking id.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		RoomID uint64 `json:"room_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}

	// an unknown or zero room id surfaces as NotFound from the service
	bookingID, err := h.Bookings.CreateBooking(c.Request().Context(), userID, body.RoomID)
	if err != nil {
		return serviceError(c, err)
	}

	_ = queue.Publish(c.Request().Context(), queue.BookingEvent{
		Action:     queue.ActionCreated,
		BookingID:  bookingID,
		UserID:     userID,
		RoomID:     body.RoomID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, echo.Map{"booking_id": bookingID})
}

// TransferBooking handles PUT /v1/booking/:bookingId.  It moves the
// caller's booking to another room; the booking id stays the same.
func (h *BookingHandler) TransferBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	// 0 parses fine and flows to the service, where a booking id that
	// resolves to nothing is a forbidden transfer, not a bad request
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var body struct {
		RoomID uint64 `json:"room_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}

	id, err := h.Bookings.TransferBooking(c.Request().Context(), userID, body.RoomID, bookingID)
	if err != nil {
		return serviceError(c, err)
	}

	_ = queue.Publish(c.Request().Context(), queue.BookingEvent{
		Action:     queue.ActionTransferred,
		BookingID:  id,
		UserID:     userID,
		RoomID:     body.RoomID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, echo.Map{"booking_id": id})
}
