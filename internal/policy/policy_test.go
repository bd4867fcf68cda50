package policy

import (
	"testing"

	"github.com/google/uuid"

	"github.com/staynest/staynest-backend/internal/models"
)

var (
	guestID    = uuid.New()
	hostID     = uuid.New()
	adminID    = uuid.New()
	strangerID = uuid.New()
)

func authed(id uuid.UUID, role string) Actor {
	return Actor{ID: id, Role: role, Authenticated: true}
}

func testBooking() *models.Booking {
	return &models.Booking{
		UserID:   guestID,
		Property: models.Property{HostID: hostID},
	}
}

func TestCanViewBooking(t *testing.T) {
	b := testBooking()

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"guest", authed(guestID, models.RoleGuest), true},
		{"property host", authed(hostID, models.RoleHost), true},
		{"stranger", authed(strangerID, models.RoleGuest), false},
		{"admin is not exempt", authed(adminID, models.RoleAdmin), false},
		{"anonymous", Actor{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewBooking(tt.actor, b); got != tt.want {
				t.Errorf("CanViewBooking = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanModifyBooking(t *testing.T) {
	b := testBooking()

	if !CanModifyBooking(authed(guestID, models.RoleGuest), b) {
		t.Error("guest should modify own booking")
	}
	if CanModifyBooking(authed(hostID, models.RoleHost), b) {
		t.Error("host must not modify a guest's booking")
	}
	if CanModifyBooking(Actor{ID: guestID}, b) {
		t.Error("unauthenticated actor must not modify")
	}
}

func TestCanModifyProperty(t *testing.T) {
	p := &models.Property{HostID: hostID}

	if !CanModifyProperty(authed(hostID, models.RoleHost), p) {
		t.Error("owner should modify own property")
	}
	if CanModifyProperty(authed(strangerID, models.RoleHost), p) {
		t.Error("another host must not modify")
	}
	if CanModifyProperty(authed(adminID, models.RoleAdmin), p) {
		t.Error("admin role grants no property access")
	}
}

func TestPaymentPredicates(t *testing.T) {
	p := &models.Payment{Booking: *testBooking()}

	if !CanViewPayment(authed(guestID, models.RoleGuest), p) {
		t.Error("paying guest should view payment")
	}
	if !CanViewPayment(authed(hostID, models.RoleHost), p) {
		t.Error("property host should view payment")
	}
	if CanViewPayment(authed(strangerID, models.RoleGuest), p) {
		t.Error("stranger must not view payment")
	}

	if !CanModifyPayment(authed(adminID, models.RoleAdmin), p) {
		t.Error("admin should modify payments")
	}
	if CanModifyPayment(authed(guestID, models.RoleGuest), p) {
		t.Error("guest must not modify payments")
	}
	if CanModifyPayment(Actor{ID: adminID, Role: models.RoleAdmin}, p) {
		t.Error("unauthenticated admin claims are void")
	}
}

func TestMessagePredicates(t *testing.T) {
	senderID := uuid.New()
	recipientID := uuid.New()
	m := &models.Message{SenderID: senderID, RecipientID: recipientID}

	if !CanViewMessage(authed(senderID, models.RoleGuest), m) {
		t.Error("sender should view message")
	}
	if !CanViewMessage(authed(recipientID, models.RoleGuest), m) {
		t.Error("recipient should view message")
	}
	if CanViewMessage(authed(strangerID, models.RoleGuest), m) {
		t.Error("outsider must not view message")
	}

	if !CanModifyMessage(authed(senderID, models.RoleGuest), m) {
		t.Error("sender should modify own message")
	}
	if CanModifyMessage(authed(recipientID, models.RoleGuest), m) {
		t.Error("recipient must not modify message")
	}
}

func TestCanModifyReview(t *testing.T) {
	authorID := uuid.New()
	r := &models.Review{UserID: authorID}

	if !CanModifyReview(authed(authorID, models.RoleGuest), r) {
		t.Error("author should modify own review")
	}
	if CanModifyReview(authed(strangerID, models.RoleGuest), r) {
		t.Error("non-author must not modify review")
	}
}
