package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nkarimov/event-hotel-booking/internal/model"
)

func TestCanBook(t *testing.T) {
	cases := []struct {
		name   string
		ticket *model.Ticket
		allow  bool
		reason DenyReason
	}{
		{
			name:   "no ticket record",
			ticket: nil,
			reason: DenyNoTicket,
		},
		{
			name: "remote ticket",
			ticket: &model.Ticket{
				Status: model.TicketStatusPaid,
				Type:   model.TicketType{IsRemote: true, IncludesHotel: true},
			},
			reason: DenyNotHotelEligible,
		},
		{
			name: "no hotel included",
			ticket: &model.Ticket{
				Status: model.TicketStatusPaid,
				Type:   model.TicketType{IsRemote: false, IncludesHotel: false},
			},
			reason: DenyNotHotelEligible,
		},
		{
			name: "reserved but unpaid",
			ticket: &model.Ticket{
				Status: model.TicketStatusReserved,
				Type:   model.TicketType{IsRemote: false, IncludesHotel: true},
			},
			reason: DenyNotPaid,
		},
		{
			name: "paid in-person ticket with hotel",
			ticket: &model.Ticket{
				Status: model.TicketStatusPaid,
				Type:   model.TicketType{IsRemote: false, IncludesHotel: true},
			},
			allow: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := CanBook(tc.ticket)
			assert.Equal(t, tc.allow, ok)
			assert.Equal(t, tc.reason, reason)
		})
	}
}
