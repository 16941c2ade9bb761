package model

import "time"

// Room is a bookable hotel room.  Capacity is the hard ceiling on
// concurrent bookings referencing the room; the allocation protocol
// guarantees the booking count never exceeds it.
//
// Fields:
//  ID        – primary key identifier.
//  HotelID   – hotel the room belongs to.
//  Name      – room label (e.g. "1020").
//  Capacity  – maximum concurrent occupants, >= 0.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Room struct {
	ID        uint64    `json:"id"`         // rooms.id
	HotelID   uint64    `json:"hotel_id"`   // rooms.hotel_id
	Name      string    `json:"name"`       // rooms.name
	Capacity  uint32    `json:"capacity"`   // rooms.capacity
	CreatedAt time.Time `json:"created_at"` // rooms.created_at
	UpdatedAt time.Time `json:"updated_at"` // rooms.updated_at
}
