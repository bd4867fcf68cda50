package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Property is a listing owned by exactly one host. Deleting the host cascades
// to its properties (and transitively to their bookings and reviews).
type Property struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	HostID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"host_id"`
	Host          User            `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"-"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Location      string          `gorm:"size:255;not null" json:"location"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_night"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (p *Property) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
