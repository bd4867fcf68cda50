// Package policy decides who may see and mutate which record. Predicates are
// pure functions over (actor, record); row-level visibility for scoped
// resources lives in scope.go and must be applied at query time as well, so
// that guessing another user's record ID yields not-found rather than data.
package policy

import (
	"github.com/staynest/staynest-backend/internal/models"
)

// CanViewBooking reports whether the actor participates in the booking,
// either as the guest or as the host of the booked property.
func CanViewBooking(actor Actor, b *models.Booking) bool {
	if !actor.Authenticated {
		return false
	}
	return actor.ID == b.UserID || actor.ID == b.Property.HostID
}

// CanModifyBooking allows only the guest who created the booking.
func CanModifyBooking(actor Actor, b *models.Booking) bool {
	return actor.Authenticated && actor.ID == b.UserID
}

// CanModifyProperty allows only the owning host.
func CanModifyProperty(actor Actor, p *models.Property) bool {
	return actor.Authenticated && actor.ID == p.HostID
}

// CanViewPayment mirrors booking visibility: the paying guest or the host of
// the booked property.
func CanViewPayment(actor Actor, p *models.Payment) bool {
	if !actor.Authenticated {
		return false
	}
	return actor.ID == p.Booking.UserID || actor.ID == p.Booking.Property.HostID
}

// CanModifyPayment allows administrators only.
func CanModifyPayment(actor Actor, _ *models.Payment) bool {
	return actor.Authenticated && actor.Role == models.RoleAdmin
}

// CanModifyReview allows only the review's author.
func CanModifyReview(actor Actor, r *models.Review) bool {
	return actor.Authenticated && actor.ID == r.UserID
}

// CanViewMessage allows the two participants.
func CanViewMessage(actor Actor, m *models.Message) bool {
	if !actor.Authenticated {
		return false
	}
	return actor.ID == m.SenderID || actor.ID == m.RecipientID
}

// CanModifyMessage allows only the sender.
func CanModifyMessage(actor Actor, m *models.Message) bool {
	return actor.Authenticated && actor.ID == m.SenderID
}
