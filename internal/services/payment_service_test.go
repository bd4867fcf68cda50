package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/staynest/staynest-backend/internal/models"
)

func seedBooking(t *testing.T, db *gorm.DB) (host, guest *models.User, booking *models.Booking) {
	t.Helper()
	host = seedUser(t, db, "host@example.com", models.RoleHost)
	guest = seedUser(t, db, "guest@example.com", models.RoleGuest)
	property := seedProperty(t, db, host, "100.00")

	booking, err := NewBookingService(db).Create(actorFor(guest), CreateBookingInput{
		PropertyID: property.ID,
		StartDate:  "2025-09-01",
		EndDate:    "2025-09-03",
	})
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return host, guest, booking
}

func TestCreatePaymentValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	_, guest, booking := seedBooking(t, db)

	tests := []struct {
		name   string
		amount string
		method string
	}{
		{"zero amount", "0", models.PaymentCreditCard},
		{"negative amount", "-10.00", models.PaymentCreditCard},
		{"unknown method", "200.00", "cash"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(actorFor(guest), CreatePaymentInput{
				BookingID:     booking.ID,
				Amount:        decimal.RequireFromString(tt.amount),
				PaymentMethod: tt.method,
			})
			if !IsValidation(err) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestCreatePaymentRequiresVisibleBooking(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	_, guest, booking := seedBooking(t, db)
	stranger := seedUser(t, db, "stranger@example.com", models.RoleGuest)

	in := CreatePaymentInput{
		BookingID:     booking.ID,
		Amount:        decimal.RequireFromString("200.00"),
		PaymentMethod: models.PaymentStripe,
	}

	// A booking the actor cannot see is indistinguishable from a missing one.
	if _, err := svc.Create(actorFor(stranger), in); !errors.Is(err, ErrNotFound) {
		t.Errorf("stranger create: err = %v, want ErrNotFound", err)
	}

	payment, err := svc.Create(actorFor(guest), in)
	if err != nil {
		t.Fatalf("guest create: %v", err)
	}
	if !payment.Amount.Equal(decimal.RequireFromString("200.00")) {
		t.Errorf("amount = %s, want 200.00", payment.Amount)
	}
}

func TestPaymentVisibilityFollowsBooking(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)
	host, guest, booking := seedBooking(t, db)
	stranger := seedUser(t, db, "stranger@example.com", models.RoleGuest)

	payment, err := svc.Create(actorFor(guest), CreatePaymentInput{
		BookingID:     booking.ID,
		Amount:        decimal.RequireFromString("200.00"),
		PaymentMethod: models.PaymentPaypal,
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	if _, err := svc.Get(actorFor(guest), payment.ID); err != nil {
		t.Errorf("guest get: %v", err)
	}
	if _, err := svc.Get(actorFor(host), payment.ID); err != nil {
		t.Errorf("host get: %v", err)
	}
	if _, err := svc.Get(actorFor(stranger), payment.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stranger get: err = %v, want ErrNotFound", err)
	}

	_, total, err := svc.List(actorFor(stranger), 1, 20)
	if err != nil {
		t.Fatalf("stranger list: %v", err)
	}
	if total != 0 {
		t.Errorf("stranger list total = %d, want 0", total)
	}
}

func TestPaymentMutationAdminOnly(t *testing.T) {
	db := openTestDB(t)
	svc := NewPaymentService(db)

	host := seedUser(t, db, "host@example.com", models.RoleHost)
	// The admin books for themselves so the record stays inside their scope;
	// the role gate and the visibility scope are independent.
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	property := seedProperty(t, db, host, "100.00")

	booking, err := NewBookingService(db).Create(actorFor(admin), CreateBookingInput{
		PropertyID: property.ID,
		StartDate:  "2025-09-01",
		EndDate:    "2025-09-03",
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	payment, err := svc.Create(actorFor(admin), CreatePaymentInput{
		BookingID:     booking.ID,
		Amount:        decimal.RequireFromString("200.00"),
		PaymentMethod: models.PaymentCreditCard,
	})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	amount := decimal.RequireFromString("250.00")
	if _, err := svc.Update(actorFor(host), payment.ID, UpdatePaymentInput{Amount: &amount}); !errors.Is(err, ErrForbidden) {
		t.Errorf("host update: err = %v, want ErrForbidden", err)
	}

	updated, err := svc.Update(actorFor(admin), payment.ID, UpdatePaymentInput{Amount: &amount})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if !updated.Amount.Equal(amount) {
		t.Errorf("amount = %s, want %s", updated.Amount, amount)
	}

	if err := svc.Delete(actorFor(host), payment.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("host delete: err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(actorFor(admin), payment.ID); err != nil {
		t.Errorf("admin delete: %v", err)
	}
}
