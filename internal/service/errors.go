// Package service implements the booking engine: the eligibility rule
// set, the capacity admission check and the allocation protocol that
// composes them into atomic create/read/transfer operations.
package service

import "errors"

// The protocol maps every validation failure onto one of two kinds.
// Handlers translate ErrNotFound into a 404 and ErrForbidden into a
// 403; anything else is an internal fault surfaced as a generic 500.
var (
	// ErrNotFound covers a missing booking on read and a target room
	// that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden covers eligibility failures, duplicate-booking
	// attempts, capacity exhaustion and ownership mismatches.
	ErrForbidden = errors.New("forbidden")
)

// ErrDuplicateBooking is returned by Store implementations when the
// unique-user constraint rejects a booking insert.  The protocol maps
// it onto ErrForbidden; it exists so the constraint violation raced in
// by a concurrent create is indistinguishable from the up-front check.
var ErrDuplicateBooking = errors.New("user already has a booking")
