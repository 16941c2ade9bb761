// Package repository implements the MySQL persistence layer.  Stores
// expose plain read methods and transactional units; row locking uses
// SELECT ... FOR UPDATE so concurrent allocators for the same room are
// serialized while different rooms proceed independently.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nkarimov/event-hotel-booking/internal/model"
	"github.com/nkarimov/event-hotel-booking/internal/service"
)

// BookingStore persists bookings and their rooms.  It satisfies
// service.Store.
type BookingStore struct {
	db *sql.DB
}

// NewBookingStore returns a BookingStore bound to the given database.
func NewBookingStore(db *sql.DB) *BookingStore { return &BookingStore{db: db} }

// CurrentBooking returns the user's booking joined with its room.
// sql.ErrNoRows is passed through when the user has no booking.
func (s *BookingStore) CurrentBooking(ctx context.Context, userID uint64) (model.Booking, model.Room, error) {
	const q = `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
	                  r.id, r.hotel_id, r.name, r.capacity, r.created_at, r.updated_at
	           FROM bookings b
	           JOIN rooms r ON r.id = b.room_id
	           WHERE b.user_id = ? LIMIT 1`
	var (
		b model.Booking
		r model.Room
	)
	err := s.db.QueryRowContext(ctx, q, userID).Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt,
		&r.ID, &r.HotelID, &r.Name, &r.Capacity, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return model.Booking{}, model.Room{}, err
	}
	return b, r, nil
}

// Atomic runs fn inside a database transaction.  Any error from fn
// rolls the transaction back; otherwise it commits.  InnoDB row locks
// taken through the Tx (LockRoom) are held until then, which gives the
// serialization the allocation protocol relies on.
func (s *BookingStore) Atomic(ctx context.Context, fn func(tx service.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(&storeTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}

// storeTx adapts *sql.Tx to the record operations of service.Tx.
type storeTx struct {
	tx *sql.Tx
}

func (t *storeTx) BookingByUser(ctx context.Context, userID uint64) (model.Booking, error) {
	const q = `SELECT id, user_id, room_id, created_at, updated_at
	           FROM bookings WHERE user_id = ? LIMIT 1`
	return t.scanBooking(t.tx.QueryRowContext(ctx, q, userID))
}

func (t *storeTx) BookingByID(ctx context.Context, bookingID uint64) (model.Booking, error) {
	const q = `SELECT id, user_id, room_id, created_at, updated_at
	           FROM bookings WHERE id = ? LIMIT 1`
	return t.scanBooking(t.tx.QueryRowContext(ctx, q, bookingID))
}

// LockRoom loads the room row with an exclusive lock.  Concurrent
// transactions locking the same room block here until this one ends.
func (t *storeTx) LockRoom(ctx context.Context, roomID uint64) (model.Room, error) {
	const q = `SELECT id, hotel_id, name, capacity, created_at, updated_at
	           FROM rooms WHERE id = ? FOR UPDATE`
	var r model.Room
	err := t.tx.QueryRowContext(ctx, q, roomID).Scan(
		&r.ID, &r.HotelID, &r.Name, &r.Capacity, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return model.Room{}, err
	}
	return r, nil
}

func (t *storeTx) CountRoomBookings(ctx context.Context, roomID, excludeBookingID uint64) (int, error) {
	// FOR UPDATE forces a current read.  A plain count under REPEATABLE
	// READ is served from the read view formed at the transaction's
	// first read, which predates a competitor's commit when LockRoom
	// had to wait, and would re-admit past capacity.
	// excludeBookingID 0 matches no row, so the same statement serves
	// both create (no exclusion) and transfer.
	const q = `SELECT COUNT(*) FROM bookings WHERE room_id = ? AND id <> ? FOR UPDATE`
	var n int
	if err := t.tx.QueryRowContext(ctx, q, roomID, excludeBookingID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (t *storeTx) InsertBooking(ctx context.Context, userID, roomID uint64) (uint64, error) {
	res, err := t.tx.ExecContext(ctx,
		"INSERT INTO bookings (user_id, room_id) VALUES (?, ?)",
		userID, roomID)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, service.ErrDuplicateBooking
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (t *storeTx) UpdateBookingRoom(ctx context.Context, bookingID, roomID uint64) error {
	_, err := t.tx.ExecContext(ctx,
		"UPDATE bookings SET room_id = ?, updated_at = NOW() WHERE id = ?",
		roomID, bookingID)
	return err
}

func (t *storeTx) scanBooking(row *sql.Row) (model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (errno 1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
