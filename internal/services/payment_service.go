package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/policy"
)

// PaymentService records payments against bookings. Payments are data only;
// no gateway is contacted. Visibility follows the underlying booking, and
// mutation is reserved for administrators.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

type CreatePaymentInput struct {
	BookingID     uuid.UUID
	Amount        decimal.Decimal
	PaymentMethod string
}

type UpdatePaymentInput struct {
	Amount        *decimal.Decimal
	PaymentMethod *string
}

// Create records a payment against a booking the actor can see. An invisible
// or missing booking is ErrNotFound either way.
func (s *PaymentService) Create(actor policy.Actor, in CreatePaymentInput) (*models.Payment, error) {
	if !in.Amount.IsPositive() {
		return nil, validationErr("amount", "must be a positive amount")
	}
	if !models.ValidPaymentMethod(in.PaymentMethod) {
		return nil, validationErr("payment_method", "must be one of credit_card, paypal, stripe")
	}

	var booking models.Booking
	err := s.db.Scopes(policy.ScopeBookings(actor.ID)).
		First(&booking, "bookings.id = ?", in.BookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	payment := &models.Payment{
		BookingID:     booking.ID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
	}
	if err := s.db.Create(payment).Error; err != nil {
		return nil, err
	}

	return s.Get(actor, payment.ID)
}

// Get retrieves a payment through the visibility scope.
func (s *PaymentService) Get(actor policy.Actor, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Scopes(policy.ScopePayments(actor.ID)).
		Preload("Booking").Preload("Booking.Property").Preload("Booking.Property.Host").Preload("Booking.User").
		First(&payment, "payments.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// List returns the actor's visible payments, newest first.
func (s *PaymentService) List(actor policy.Actor, page, limit int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	if err := s.db.Model(&models.Payment{}).
		Scopes(policy.ScopePayments(actor.ID)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.Scopes(policy.ScopePayments(actor.ID)).
		Preload("Booking").Preload("Booking.Property").Preload("Booking.Property.Host").Preload("Booking.User").
		Order("payments.payment_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// Update applies a patch; administrators only. The scope still applies, so
// even an admin must participate in the booking to address the record.
func (s *PaymentService) Update(actor policy.Actor, id uuid.UUID, in UpdatePaymentInput) (*models.Payment, error) {
	payment, err := s.Get(actor, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyPayment(actor, payment) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, validationErr("amount", "must be a positive amount")
		}
		updates["amount"] = *in.Amount
	}
	if in.PaymentMethod != nil {
		if !models.ValidPaymentMethod(*in.PaymentMethod) {
			return nil, validationErr("payment_method", "must be one of credit_card, paypal, stripe")
		}
		updates["payment_method"] = *in.PaymentMethod
	}

	if len(updates) > 0 {
		if err := s.db.Model(payment).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(actor, id)
}

// Delete removes a payment; administrators only.
func (s *PaymentService) Delete(actor policy.Actor, id uuid.UUID) error {
	payment, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	if !policy.CanModifyPayment(actor, payment) {
		return ErrForbidden
	}
	return s.db.Delete(payment).Error
}
