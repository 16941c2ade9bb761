package repository

import (
	"context"
	"database/sql"

	"github.com/nkarimov/event-hotel-booking/internal/model"
)

// HotelRepo reads the hotel/room catalog.  The catalog is maintained
// by a separate back office; this service only lists it.
type HotelRepo struct {
	db *sql.DB
}

// NewHotelRepo returns a HotelRepo bound to the given database.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

// List returns all hotels ordered by name.
func (r *HotelRepo) List(ctx context.Context) ([]model.Hotel, error) {
	const q = `SELECT id, name, image, created_at, updated_at FROM hotels ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]model.Hotel, 0)
	for rows.Next() {
		var (
			h     model.Hotel
			image sql.NullString
		)
		if err := rows.Scan(&h.ID, &h.Name, &image, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		if image.Valid {
			img := image.String
			h.Image = &img
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

// RoomsByHotel returns the rooms of one hotel ordered by name.  It
// returns sql.ErrNoRows when the hotel itself does not exist, so the
// handler can distinguish an unknown hotel from an empty one.
func (r *HotelRepo) RoomsByHotel(ctx context.Context, hotelID uint64) ([]model.Room, error) {
	var exists uint64
	if err := r.db.QueryRowContext(ctx,
		"SELECT id FROM hotels WHERE id = ? LIMIT 1", hotelID).Scan(&exists); err != nil {
		return nil, err
	}

	const q = `SELECT id, hotel_id, name, capacity, created_at, updated_at
	           FROM rooms WHERE hotel_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.Name, &rm.Capacity, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}
