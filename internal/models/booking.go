package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking statuses. Transitions are unrestricted for the booking owner; only
// enum membership is validated.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCanceled  = "canceled"
)

// Booking ties a guest to a property for a date range. TotalPrice is computed
// once at creation (price_per_night x nights) and never recomputed. Property
// and guest references are immutable after creation.
//
// There is no uniqueness or exclusion constraint on the date range: two
// bookings may overlap on the same property.
type Booking struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID       `gorm:"type:uuid;not null;index" json:"property_id"`
	Property   Property        `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User       User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	StartDate  time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time       `gorm:"type:date;not null" json:"end_date"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status     string          `gorm:"size:10;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func ValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingConfirmed, BookingCanceled:
		return true
	}
	return false
}
