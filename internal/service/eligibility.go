package service

import "github.com/nkarimov/event-hotel-booking/internal/model"

// DenyReason names why a ticket does not entitle its holder to a room.
type DenyReason string

const (
	DenyNoTicket         DenyReason = "NO_TICKET"
	DenyNotHotelEligible DenyReason = "NOT_HOTEL_ELIGIBLE"
	DenyNotPaid          DenyReason = "NOT_PAID"
)

// CanBook decides whether a user may hold a hotel-room booking at all,
// independent of any specific room.  A nil ticket means the ticketing
// subsystem has no record for the user.  The function is pure; the
// caller supplies the ticket after querying the ticket source.
func CanBook(t *model.Ticket) (bool, DenyReason) {
	switch {
	case t == nil:
		return false, DenyNoTicket
	case t.Type.IsRemote || !t.Type.IncludesHotel:
		return false, DenyNotHotelEligible
	case t.Status != model.TicketStatusPaid:
		return false, DenyNotPaid
	}
	return true, ""
}
