package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nkarimov/event-hotel-booking/internal/model"
)

// BookingService is the single entry point for booking operations.
// Each operation either fully commits or leaves no trace; the
// capacity and one-booking-per-user invariants hold under concurrent
// callers because every check runs in the same atomic unit as the
// write it guards.
type BookingService struct {
	store   Store
	tickets TicketSource
}

// NewBookingService wires the protocol to its collaborators.
func NewBookingService(store Store, tickets TicketSource) *BookingService {
	if store == nil || tickets == nil {
		panic("nil collaborator passed to NewBookingService")
	}
	return &BookingService{store: store, tickets: tickets}
}

// GetCurrentBooking returns the caller's booking with its room, or
// ErrNotFound when the user has none.
func (s *BookingService) GetCurrentBooking(ctx context.Context, userID uint64) (model.Booking, model.Room, error) {
	b, r, err := s.store.CurrentBooking(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, model.Room{}, fmt.Errorf("no booking for user %d: %w", userID, ErrNotFound)
		}
		return model.Booking{}, model.Room{}, fmt.Errorf("load booking: %w", err)
	}
	return b, r, nil
}

// CreateBooking books a room for the user and returns the new booking
// id.  Preconditions, in order: the ticket must allow hotel booking
// (ErrForbidden), the user must not already hold a booking
// (ErrForbidden), the room must exist (ErrNotFound) and have free
// capacity (ErrForbidden).
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint64) (uint64, error) {
	var ticket *model.Ticket
	t, err := s.tickets.TicketByUser(ctx, userID)
	switch {
	case err == nil:
		ticket = &t
	case errors.Is(err, sql.ErrNoRows):
		// no ticket record: handled by the eligibility rules below
	default:
		return 0, fmt.Errorf("load ticket: %w", err)
	}
	if ok, reason := CanBook(ticket); !ok {
		return 0, fmt.Errorf("%s: %w", reason, ErrForbidden)
	}

	var bookingID uint64
	err = s.store.Atomic(ctx, func(tx Tx) error {
		if _, err := tx.BookingByUser(ctx, userID); err == nil {
			return fmt.Errorf("user %d already has a booking: %w", userID, ErrForbidden)
		} else if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check existing booking: %w", err)
		}
		if err := occupy(ctx, tx, roomID, 0); err != nil {
			return err
		}
		id, err := tx.InsertBooking(ctx, userID, roomID)
		if err != nil {
			if errors.Is(err, ErrDuplicateBooking) {
				// lost the race against a concurrent create for the
				// same user; same outcome as the up-front check
				return fmt.Errorf("user %d already has a booking: %w", userID, ErrForbidden)
			}
			return fmt.Errorf("insert booking: %w", err)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}

// TransferBooking moves an existing booking to another room and
// returns the unchanged booking id.  The booking must exist and belong
// to the caller (ErrForbidden), the target room must exist
// (ErrNotFound) and have free capacity (ErrForbidden).  Ticket
// eligibility is deliberately not re-evaluated on transfer.
func (s *BookingService) TransferBooking(ctx context.Context, userID, roomID, bookingID uint64) (uint64, error) {
	err := s.store.Atomic(ctx, func(tx Tx) error {
		b, err := tx.BookingByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("booking %d does not exist: %w", bookingID, ErrForbidden)
			}
			return fmt.Errorf("load booking: %w", err)
		}
		if b.UserID != userID {
			return fmt.Errorf("booking %d belongs to another user: %w", bookingID, ErrForbidden)
		}
		// The mover's own slot is excluded from the target count, so a
		// transfer into the room the user already occupies is a no-op
		// rather than a spurious ROOM_FULL at exact capacity.
		if err := occupy(ctx, tx, roomID, b.ID); err != nil {
			return err
		}
		if err := tx.UpdateBookingRoom(ctx, b.ID, roomID); err != nil {
			return fmt.Errorf("update booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}

// occupy is the admission check: it locks the room row, counts current
// occupants inside the same unit and admits only while occupancy is
// below capacity.  The caller must perform its write before the unit
// commits; admission alone reserves nothing.
func occupy(ctx context.Context, tx Tx, roomID, excludeBookingID uint64) error {
	room, err := tx.LockRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("room %d does not exist: %w", roomID, ErrNotFound)
		}
		return fmt.Errorf("lock room: %w", err)
	}
	occupancy, err := tx.CountRoomBookings(ctx, roomID, excludeBookingID)
	if err != nil {
		return fmt.Errorf("count occupants: %w", err)
	}
	if occupancy >= int(room.Capacity) {
		return fmt.Errorf("room %d is full: %w", roomID, ErrForbidden)
	}
	return nil
}
