package policy

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORM scopes implementing row-level visibility. Services apply these to both
// list and by-ID queries for scoped resources, making "exists but forbidden"
// and "does not exist" indistinguishable to unauthorized callers.

// ScopeBookings restricts to bookings where the actor is the guest or the
// host of the booked property.
func ScopeBookings(actorID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN properties ON properties.id = bookings.property_id").
			Where("bookings.user_id = ? OR properties.host_id = ?", actorID, actorID)
	}
}

// ScopePayments restricts to payments on bookings the actor participates in.
func ScopePayments(actorID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN bookings ON bookings.id = payments.booking_id").
			Joins("JOIN properties ON properties.id = bookings.property_id").
			Where("bookings.user_id = ? OR properties.host_id = ?", actorID, actorID)
	}
}

// ScopeMessages restricts to messages the actor sent or received.
func ScopeMessages(actorID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("messages.sender_id = ? OR messages.recipient_id = ?", actorID, actorID)
	}
}
