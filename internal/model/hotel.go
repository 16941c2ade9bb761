package model

import "time"

// Hotel represents a partner hotel that offers rooms to event
// attendees.  The catalog is maintained out of band; this service
// only reads it.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the hotel.
//  Image     – optional cover image URL.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Hotel struct {
	ID        uint64    `json:"id"`         // hotels.id
	Name      string    `json:"name"`       // hotels.name
	Image     *string   `json:"image"`      // hotels.image (nullable)
	CreatedAt time.Time `json:"created_at"` // hotels.created_at
	UpdatedAt time.Time `json:"updated_at"` // hotels.updated_at
}
