package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a direct message between two users. Visible only to its sender
// and recipient; editable only by the sender.
type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_sender" json:"sender_id"`
	Sender      User      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_recipient" json:"recipient_id"`
	Recipient   User      `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	SentAt      time.Time `gorm:"autoCreateTime" json:"sent_at"`
}

func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
