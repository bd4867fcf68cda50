package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staynest/staynest-backend/internal/models"
)

type CreatePaymentRequest struct {
	BookingID     uuid.UUID       `json:"booking_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=credit_card paypal stripe"`
}

type UpdatePaymentRequest struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
}

// BookingSummary is the minimal booking representation nested in payments.
type BookingSummary struct {
	ID         uuid.UUID       `json:"id"`
	Property   PropertySummary `json:"property"`
	User       UserSummary     `json:"user"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
}

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	Booking       BookingSummary  `json:"booking"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
}

func NewBookingSummary(b *models.Booking) BookingSummary {
	return BookingSummary{
		ID:         b.ID,
		Property:   NewPropertySummary(&b.Property),
		User:       NewUserSummary(&b.User),
		StartDate:  b.StartDate.Format(dateLayout),
		EndDate:    b.EndDate.Format(dateLayout),
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
	}
}

func NewPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Booking:       NewBookingSummary(&p.Booking),
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		PaymentDate:   p.PaymentDate,
	}
}
