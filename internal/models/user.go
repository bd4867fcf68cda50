package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Admin unlocks payment mutation; host/guest are marketplace roles
// and any account can act as both sides.
const (
	RoleGuest = "guest"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

// User is the marketplace account. Email is the authentication key and is
// unique at the persistence layer.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	FirstName   string    `gorm:"size:150;not null" json:"first_name"`
	LastName    string    `gorm:"size:150;not null" json:"last_name"`
	PhoneNumber *string   `gorm:"size:20" json:"phone_number,omitempty"`
	Role        string    `gorm:"size:10;not null;default:'guest'" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func ValidRole(role string) bool {
	switch role {
	case RoleGuest, RoleHost, RoleAdmin:
		return true
	}
	return false
}
