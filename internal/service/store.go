package service

import (
	"context"

	"github.com/nkarimov/event-hotel-booking/internal/model"
)

// Store is the storage collaborator the allocation protocol runs
// against.  Atomic executes fn inside one atomic unit: every read fn
// performs through the Tx is serializable with the writes it commits,
// and a returned error rolls the whole unit back.  Implementations
// must serialize concurrent units touching the same room (row lock or
// equivalent) while leaving units on distinct rooms independent.
type Store interface {
	// CurrentBooking returns the user's booking joined with its room,
	// or sql.ErrNoRows when the user has none.
	CurrentBooking(ctx context.Context, userID uint64) (model.Booking, model.Room, error)
	Atomic(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the set of record operations available inside one atomic unit.
// Absent rows are reported as sql.ErrNoRows.
type Tx interface {
	BookingByUser(ctx context.Context, userID uint64) (model.Booking, error)
	BookingByID(ctx context.Context, bookingID uint64) (model.Booking, error)
	// LockRoom loads a room and locks it against concurrent allocators
	// until the unit commits or rolls back.
	LockRoom(ctx context.Context, roomID uint64) (model.Room, error)
	// CountRoomBookings counts bookings referencing the room, skipping
	// excludeBookingID when non-zero.  The count must observe rows
	// committed by competing units while LockRoom waited; a count
	// served from an older read view breaks the capacity invariant.
	CountRoomBookings(ctx context.Context, roomID, excludeBookingID uint64) (int, error)
	// InsertBooking creates a booking row and returns its id, or
	// ErrDuplicateBooking when the user already has one.
	InsertBooking(ctx context.Context, userID, roomID uint64) (uint64, error)
	UpdateBookingRoom(ctx context.Context, bookingID, roomID uint64) error
}

// TicketSource supplies read-only ticket facts from the ticketing
// subsystem.  A missing ticket is reported as sql.ErrNoRows.
type TicketSource interface {
	TicketByUser(ctx context.Context, userID uint64) (model.Ticket, error)
}
