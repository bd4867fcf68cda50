package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/policy"
)

// ReviewService handles property reviews. Reads are public; a user may hold
// at most one review per property, enforced by the composite unique index.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

type CreateReviewInput struct {
	PropertyID uuid.UUID
	Rating     int
	Comment    string
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// Create persists a review authored by the actor. A duplicate
// (property, user) pair surfaces the DB uniqueness violation as ErrConflict.
func (s *ReviewService) Create(actor policy.Actor, in CreateReviewInput) (*models.Review, error) {
	if err := validateRating(in.Rating); err != nil {
		return nil, err
	}
	comment := strings.TrimSpace(in.Comment)
	if comment == "" {
		return nil, validationErr("comment", "cannot be empty")
	}

	var property models.Property
	if err := s.db.First(&property, "id = ?", in.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := &models.Review{
		PropertyID: property.ID,
		UserID:     actor.ID,
		Rating:     in.Rating,
		Comment:    comment,
	}
	if err := s.db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return s.Get(review.ID)
}

// Get retrieves a review by ID. Public.
func (s *ReviewService) Get(id uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := s.db.Preload("Property").Preload("Property.Host").Preload("User").
		First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// List returns reviews newest first, optionally filtered to one property.
func (s *ReviewService) List(propertyID *uuid.UUID, page, limit int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	query := s.db.Model(&models.Review{})
	if propertyID != nil {
		query = query.Where("property_id = ?", *propertyID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	find := s.db.Preload("Property").Preload("Property.Host").Preload("User")
	if propertyID != nil {
		find = find.Where("property_id = ?", *propertyID)
	}
	err := find.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// Update applies a patch; author only.
func (s *ReviewService) Update(actor policy.Actor, id uuid.UUID, in UpdateReviewInput) (*models.Review, error) {
	review, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyReview(actor, review) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if in.Rating != nil {
		if err := validateRating(*in.Rating); err != nil {
			return nil, err
		}
		updates["rating"] = *in.Rating
	}
	if in.Comment != nil {
		comment := strings.TrimSpace(*in.Comment)
		if comment == "" {
			return nil, validationErr("comment", "cannot be empty")
		}
		updates["comment"] = comment
	}

	if len(updates) > 0 {
		if err := s.db.Model(review).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete removes a review; author only.
func (s *ReviewService) Delete(actor policy.Actor, id uuid.UUID) error {
	review, err := s.Get(id)
	if err != nil {
		return err
	}
	if !policy.CanModifyReview(actor, review) {
		return ErrForbidden
	}
	return s.db.Delete(review).Error
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return validationErr("rating", "must be between 1 and 5")
	}
	return nil
}
