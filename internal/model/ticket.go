package model

// Ticket statuses as issued by the ticketing subsystem.  Only PAID
// tickets entitle their holder to a room booking.
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

// TicketType describes a class of event ticket.  Remote tickets and
// tickets without hotel accommodation can never book a room.
type TicketType struct {
	ID            uint64 `json:"id"`             // ticket_types.id
	Name          string `json:"name"`           // ticket_types.name
	PriceCents    uint32 `json:"price_cents"`    // ticket_types.price_cents
	IsRemote      bool   `json:"is_remote"`      // ticket_types.is_remote
	IncludesHotel bool   `json:"includes_hotel"` // ticket_types.includes_hotel
}

// Ticket is an attendee's event ticket together with its type.  The
// booking engine treats tickets as read-only facts owned by the
// ticketing subsystem.
type Ticket struct {
	ID     uint64     `json:"id"`      // tickets.id
	UserID uint64     `json:"user_id"` // tickets.user_id
	Status string     `json:"status"`  // tickets.status
	Type   TicketType `json:"type"`
}
