package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nkarimov/event-hotel-booking/internal/repository"
)

// HotelHandler exposes the public hotel/room catalog.  These routes
// need no authentication and are served through the response cache.
type HotelHandler struct {
	Hotels *repository.HotelRepo
}

// NewHotelHandler constructs a HotelHandler.
func NewHotelHandler(hotels *repository.HotelRepo) *HotelHandler {
	if hotels == nil {
		panic("nil repository passed to NewHotelHandler")
	}
	return &HotelHandler{Hotels: hotels}
}

// ListHotels handles GET /v1/hotels.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.Hotels.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": hotels})
}

// ListRooms handles GET /v1/hotels/:id/rooms.  Unknown hotels return
// 404; a hotel without rooms returns an empty list.
func (h *HotelHandler) ListRooms(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || hotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	rooms, err := h.Hotels.RoomsByHotel(c.Request().Context(), hotelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}
