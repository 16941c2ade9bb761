// Package queue publishes booking lifecycle events to RabbitMQ and
// runs the background consumer that writes the booking audit log.
package queue

// Booking event actions.
const (
	ActionCreated     = "created"
	ActionTransferred = "transferred"
)

// BookingEvent is emitted after a booking create or transfer commits.
// It carries enough for downstream consumers (audit log, notifications)
// to act without querying the primary database.
type BookingEvent struct {
	Action     string `json:"action"`
	BookingID  uint64 `json:"booking_id"`
	UserID     uint64 `json:"user_id"`
	RoomID     uint64 `json:"room_id"`
	OccurredAt string `json:"occurred_at"`
}
