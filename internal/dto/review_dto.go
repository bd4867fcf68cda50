package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/staynest/staynest-backend/internal/models"
)

type CreateReviewRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	Rating     int       `json:"rating" validate:"required"`
	Comment    string    `json:"comment" validate:"required"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

type ReviewResponse struct {
	ID        uuid.UUID       `json:"id"`
	Property  PropertySummary `json:"property"`
	User      UserSummary     `json:"user"`
	Rating    int             `json:"rating"`
	Comment   string          `json:"comment"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Property:  NewPropertySummary(&r.Property),
		User:      NewUserSummary(&r.User),
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
