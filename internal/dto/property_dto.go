package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staynest/staynest-backend/internal/models"
)

type CreatePropertyRequest struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	Location      string          `json:"location" validate:"required"`
	PricePerNight decimal.Decimal `json:"price_per_night" validate:"required"`
}

type UpdatePropertyRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Location      *string          `json:"location,omitempty"`
	PricePerNight *decimal.Decimal `json:"price_per_night,omitempty"`
}

// PropertySummary is the minimal property representation nested inside
// bookings and payments.
type PropertySummary struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
}

type PropertyResponse struct {
	ID            uuid.UUID       `json:"id"`
	Host          UserSummary     `json:"host"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewPropertySummary(p *models.Property) PropertySummary {
	return PropertySummary{
		ID:            p.ID,
		Name:          p.Name,
		Location:      p.Location,
		PricePerNight: p.PricePerNight,
	}
}

func NewPropertyResponse(p *models.Property) PropertyResponse {
	return PropertyResponse{
		ID:            p.ID,
		Host:          NewUserSummary(&p.Host),
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		PricePerNight: p.PricePerNight,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
