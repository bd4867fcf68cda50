package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/staynest/staynest-backend/internal/cache"
	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/policy"
)

const propertyCacheTTL = 5 * time.Minute

// PropertyService handles listing CRUD. Reads are public; mutation is
// restricted to the owning host. Property detail is cached in Redis when a
// cache store is configured (nil store disables caching).
type PropertyService struct {
	db    *gorm.DB
	cache cache.Store
}

func NewPropertyService(db *gorm.DB, store cache.Store) *PropertyService {
	return &PropertyService{db: db, cache: store}
}

type CreatePropertyInput struct {
	Name          string
	Description   string
	Location      string
	PricePerNight decimal.Decimal
}

type UpdatePropertyInput struct {
	Name          *string
	Description   *string
	Location      *string
	PricePerNight *decimal.Decimal
}

// Create persists a property owned by the actor.
func (s *PropertyService) Create(actor policy.Actor, in CreatePropertyInput) (*models.Property, error) {
	if err := validatePropertyFields(in.Name, in.Description, in.Location, in.PricePerNight); err != nil {
		return nil, err
	}

	property := &models.Property{
		HostID:        actor.ID,
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Location:      strings.TrimSpace(in.Location),
		PricePerNight: in.PricePerNight,
	}
	if err := s.db.Create(property).Error; err != nil {
		return nil, err
	}

	return s.load(property.ID)
}

// Get retrieves a property by ID, serving from cache when possible.
func (s *PropertyService) Get(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, propertyKey(id)); err == nil {
			var property models.Property
			if err := json.Unmarshal(raw, &property); err == nil {
				return &property, nil
			}
		}
	}

	property, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(property); err == nil {
			if err := s.cache.Set(ctx, propertyKey(id), raw, propertyCacheTTL); err != nil {
				slog.Warn("property cache set failed", "property_id", id, "error", err)
			}
		}
	}
	return property, nil
}

// List returns properties newest first. Public, unscoped.
func (s *PropertyService) List(page, limit int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	if err := s.db.Model(&models.Property{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.Preload("Host").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// Update applies a patch; host only. Price changes never touch existing
// bookings, whose totals were fixed at creation.
func (s *PropertyService) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, in UpdatePropertyInput) (*models.Property, error) {
	property, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyProperty(actor, property) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, validationErr("name", "cannot be empty")
		}
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, validationErr("description", "cannot be empty")
		}
		updates["description"] = *in.Description
	}
	if in.Location != nil {
		if strings.TrimSpace(*in.Location) == "" {
			return nil, validationErr("location", "cannot be empty")
		}
		updates["location"] = strings.TrimSpace(*in.Location)
	}
	if in.PricePerNight != nil {
		if !in.PricePerNight.IsPositive() {
			return nil, validationErr("price_per_night", "must be a positive amount")
		}
		updates["price_per_night"] = *in.PricePerNight
	}

	if len(updates) > 0 {
		if err := s.db.Model(property).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.invalidate(ctx, id)
	return s.load(id)
}

// Delete removes a property; host only. Bookings and reviews cascade.
func (s *PropertyService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	property, err := s.load(id)
	if err != nil {
		return err
	}
	if !policy.CanModifyProperty(actor, property) {
		return ErrForbidden
	}
	if err := s.db.Delete(property).Error; err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *PropertyService) load(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := s.db.Preload("Host").First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (s *PropertyService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, propertyKey(id)); err != nil {
		slog.Warn("property cache invalidation failed", "property_id", id, "error", err)
	}
}

func propertyKey(id uuid.UUID) string {
	return "property:" + id.String()
}

func validatePropertyFields(name, description, location string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return validationErr("name", "cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return validationErr("description", "cannot be empty")
	}
	if strings.TrimSpace(location) == "" {
		return validationErr("location", "cannot be empty")
	}
	if !price.IsPositive() {
		return validationErr("price_per_night", "must be a positive amount")
	}
	return nil
}
