package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/staynest/staynest-backend/internal/models"
)

type CreateMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Body        string    `json:"body" validate:"required"`
}

type UpdateMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

type MessageResponse struct {
	ID        uuid.UUID   `json:"id"`
	Sender    UserSummary `json:"sender"`
	Recipient UserSummary `json:"recipient"`
	Body      string      `json:"body"`
	SentAt    time.Time   `json:"sent_at"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Sender:    NewUserSummary(&m.Sender),
		Recipient: NewUserSummary(&m.Recipient),
		Body:      m.Body,
		SentAt:    m.SentAt,
	}
}
