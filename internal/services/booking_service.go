package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/staynest/staynest-backend/internal/metrics"
	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/policy"
)

const dateLayout = "2006-01-02"

// BookingService owns the booking lifecycle: request validation, price
// computation, initial state, and status changes.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// CreateBookingInput carries the client-writable fields of a booking create.
// The guest is always the authenticated actor, never client input.
type CreateBookingInput struct {
	PropertyID uuid.UUID
	StartDate  string
	EndDate    string
}

// UpdateBookingInput carries a booking patch. Property and user references
// are immutable; their mere presence in a patch is rejected.
type UpdateBookingInput struct {
	PropertyID *uuid.UUID
	UserID     *uuid.UUID
	Status     *string
}

// Create validates the date range, computes the total price with exact
// decimal arithmetic, and persists a pending booking owned by the actor.
//
// No overlap check is performed: two bookings may cover the same nights on
// the same property. Closing that gap needs an atomic check-and-insert
// (serializable transaction or row lock) here, before the Create call.
func (s *BookingService) Create(actor policy.Actor, in CreateBookingInput) (*models.Booking, error) {
	start, end, nights, err := parseStayDates(in.StartDate, in.EndDate)
	if err != nil {
		metrics.BookingRejectionsTotal.WithLabelValues("invalid_dates").Inc()
		return nil, err
	}

	var property models.Property
	if err := s.db.First(&property, "id = ?", in.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.BookingRejectionsTotal.WithLabelValues("property_not_found").Inc()
			return nil, ErrNotFound
		}
		return nil, err
	}

	booking := &models.Booking{
		PropertyID: property.ID,
		UserID:     actor.ID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: property.PricePerNight.Mul(decimal.NewFromInt(int64(nights))),
		Status:     models.BookingPending,
	}

	if err := s.db.Create(booking).Error; err != nil {
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()

	booking.Property = property
	return s.Get(actor, booking.ID)
}

// Get retrieves a booking by ID through the visibility scope. Bookings the
// actor does not participate in come back as ErrNotFound.
func (s *BookingService) Get(actor policy.Actor, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.
		Scopes(policy.ScopeBookings(actor.ID)).
		Preload("Property").Preload("Property.Host").Preload("User").
		First(&booking, "bookings.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// List returns the actor's visible bookings, newest first.
func (s *BookingService) List(actor policy.Actor, page, limit int) ([]models.Booking, int64, error) {
	var bookings []models.Booking
	var total int64

	if err := s.db.Model(&models.Booking{}).
		Scopes(policy.ScopeBookings(actor.ID)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.
		Scopes(policy.ScopeBookings(actor.ID)).
		Preload("Property").Preload("Property.Host").Preload("User").
		Order("bookings.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// Update applies a patch to a booking. Property and user references cannot
// change after creation; status may be set to any value of the enum by the
// booking owner (transitions are deliberately unrestricted).
func (s *BookingService) Update(actor policy.Actor, id uuid.UUID, in UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.Get(actor, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyBooking(actor, booking) {
		return nil, ErrForbidden
	}

	if in.PropertyID != nil || in.UserID != nil {
		return nil, validationErr("", "property and user cannot be changed after booking creation")
	}

	if in.Status != nil {
		if !models.ValidBookingStatus(*in.Status) {
			return nil, validationErr("status", "must be one of pending, confirmed, canceled")
		}
		if err := s.db.Model(booking).Update("status", *in.Status).Error; err != nil {
			return nil, err
		}
		booking.Status = *in.Status
	}

	return booking, nil
}

// Delete removes a booking; only its guest may do so. Payments cascade.
func (s *BookingService) Delete(actor policy.Actor, id uuid.UUID) error {
	booking, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	if !policy.CanModifyBooking(actor, booking) {
		return ErrForbidden
	}
	return s.db.Delete(booking).Error
}

// parseStayDates validates the calendar dates and the stay length, returning
// UTC-midnight dates and the number of nights.
func parseStayDates(startStr, endStr string) (start, end time.Time, nights int, err error) {
	start, err = time.ParseInLocation(dateLayout, startStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, 0, validationErr("start_date", "must be a valid date in YYYY-MM-DD format")
	}
	end, err = time.ParseInLocation(dateLayout, endStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, 0, validationErr("end_date", "must be a valid date in YYYY-MM-DD format")
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, 0, validationErr("", "end date must be after start date")
	}

	// Whole-day dates make this implied by the check above; kept as an
	// explicit guard on the price multiplier.
	nights = int(end.Sub(start).Hours() / 24)
	if nights < 1 {
		return time.Time{}, time.Time{}, 0, validationErr("", "booking must be for at least one night")
	}

	return start, end, nights, nil
}
