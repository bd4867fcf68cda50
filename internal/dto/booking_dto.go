package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staynest/staynest-backend/internal/models"
)

const dateLayout = "2006-01-02"

// CreateBookingRequest deliberately has no user field: the guest is always
// the authenticated caller.
type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	StartDate  string    `json:"start_date" validate:"required"`
	EndDate    string    `json:"end_date" validate:"required"`
}

// UpdateBookingRequest accepts property_id/user_id only so their presence can
// be rejected explicitly rather than silently dropped.
type UpdateBookingRequest struct {
	PropertyID *uuid.UUID `json:"property_id,omitempty"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Status     *string    `json:"status,omitempty"`
}

type BookingResponse struct {
	ID         uuid.UUID       `json:"id"`
	Property   PropertySummary `json:"property"`
	User       UserSummary     `json:"user"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

func NewBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		Property:   NewPropertySummary(&b.Property),
		User:       NewUserSummary(&b.User),
		StartDate:  b.StartDate.Format(dateLayout),
		EndDate:    b.EndDate.Format(dateLayout),
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}
