package model

import "time"

// Booking ties a user to the room they currently occupy.  The system
// models current bookings only: a user has at most one row here at
// any time, and a transfer rewrites RoomID in place instead of
// creating history.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the booking (unique across the table).
//  RoomID    – room currently occupied.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp (bumped on transfer).
type Booking struct {
	ID        uint64    `json:"id"`         // bookings.id
	UserID    uint64    `json:"user_id"`    // bookings.user_id
	RoomID    uint64    `json:"room_id"`    // bookings.room_id
	CreatedAt time.Time `json:"created_at"` // bookings.created_at
	UpdatedAt time.Time `json:"updated_at"` // bookings.updated_at
}
