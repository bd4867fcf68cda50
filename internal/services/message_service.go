package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/policy"
)

// MessageService handles direct messages. Persistence only; there is no
// real-time delivery transport.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

type CreateMessageInput struct {
	RecipientID uuid.UUID
	Body        string
}

// Create persists a message from the actor to the recipient.
func (s *MessageService) Create(actor policy.Actor, in CreateMessageInput) (*models.Message, error) {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, validationErr("body", "cannot be empty")
	}
	if in.RecipientID == actor.ID {
		return nil, validationErr("recipient_id", "cannot message yourself")
	}

	var recipient models.User
	if err := s.db.First(&recipient, "id = ?", in.RecipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	message := &models.Message{
		SenderID:    actor.ID,
		RecipientID: recipient.ID,
		Body:        body,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, err
	}

	return s.Get(actor, message.ID)
}

// Get retrieves a message through the participant scope.
func (s *MessageService) Get(actor policy.Actor, id uuid.UUID) (*models.Message, error) {
	var message models.Message
	err := s.db.Scopes(policy.ScopeMessages(actor.ID)).
		Preload("Sender").Preload("Recipient").
		First(&message, "messages.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

// List returns the actor's conversations, oldest first (chronological
// thread order).
func (s *MessageService) List(actor policy.Actor, page, limit int) ([]models.Message, int64, error) {
	var messages []models.Message
	var total int64

	if err := s.db.Model(&models.Message{}).
		Scopes(policy.ScopeMessages(actor.ID)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.Scopes(policy.ScopeMessages(actor.ID)).
		Preload("Sender").Preload("Recipient").
		Order("messages.sent_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// UpdateBody edits a message body; sender only.
func (s *MessageService) UpdateBody(actor policy.Actor, id uuid.UUID, body string) (*models.Message, error) {
	message, err := s.Get(actor, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyMessage(actor, message) {
		return nil, ErrForbidden
	}

	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, validationErr("body", "cannot be empty")
	}

	if err := s.db.Model(message).Update("body", trimmed).Error; err != nil {
		return nil, err
	}
	message.Body = trimmed
	return message, nil
}

// Delete removes a message; sender only.
func (s *MessageService) Delete(actor policy.Actor, id uuid.UUID) error {
	message, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	if !policy.CanModifyMessage(actor, message) {
		return ErrForbidden
	}
	return s.db.Delete(message).Error
}
