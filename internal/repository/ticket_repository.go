package repository

import (
	"context"
	"database/sql"

	"github.com/nkarimov/event-hotel-booking/internal/model"
)

// TicketRepo reads tickets issued by the ticketing subsystem.  The
// booking engine never writes these tables.  It satisfies
// service.TicketSource.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo returns a TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

// TicketByUser returns the user's ticket joined with its type, or
// sql.ErrNoRows when the user holds no ticket.
func (r *TicketRepo) TicketByUser(ctx context.Context, userID uint64) (model.Ticket, error) {
	const q = `SELECT t.id, t.user_id, t.status,
	                  tt.id, tt.name, tt.price_cents, tt.is_remote, tt.includes_hotel
	           FROM tickets t
	           JOIN ticket_types tt ON tt.id = t.ticket_type_id
	           WHERE t.user_id = ? LIMIT 1`
	var t model.Ticket
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&t.ID, &t.UserID, &t.Status,
		&t.Type.ID, &t.Type.Name, &t.Type.PriceCents, &t.Type.IsRemote, &t.Type.IncludesHotel,
	)
	if err != nil {
		return model.Ticket{}, err
	}
	return t, nil
}
