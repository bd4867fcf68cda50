package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment methods.
const (
	PaymentCreditCard = "credit_card"
	PaymentPaypal     = "paypal"
	PaymentStripe     = "stripe"
)

// Payment is a pure record against a booking; no gateway integration exists.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	Booking       Booking         `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"size:20;not null" json:"payment_method"`
	PaymentDate   time.Time       `gorm:"autoCreateTime" json:"payment_date"`
}

func (p *Payment) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCreditCard, PaymentPaypal, PaymentStripe:
		return true
	}
	return false
}
