package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/staynest/staynest-backend/internal/models"
)

func TestCreateMessageValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewMessageService(db)

	alice := seedUser(t, db, "alice@example.com", models.RoleGuest)
	bob := seedUser(t, db, "bob@example.com", models.RoleGuest)

	if _, err := svc.Create(actorFor(alice), CreateMessageInput{RecipientID: bob.ID, Body: "  "}); !IsValidation(err) {
		t.Errorf("blank body: err = %v, want validation error", err)
	}
	if _, err := svc.Create(actorFor(alice), CreateMessageInput{RecipientID: alice.ID, Body: "hi me"}); !IsValidation(err) {
		t.Errorf("self message: err = %v, want validation error", err)
	}
	if _, err := svc.Create(actorFor(alice), CreateMessageInput{RecipientID: uuid.New(), Body: "hello?"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown recipient: err = %v, want ErrNotFound", err)
	}
}

func TestMessageVisibilityScope(t *testing.T) {
	db := openTestDB(t)
	svc := NewMessageService(db)

	alice := seedUser(t, db, "alice@example.com", models.RoleGuest)
	bob := seedUser(t, db, "bob@example.com", models.RoleGuest)
	carol := seedUser(t, db, "carol@example.com", models.RoleGuest)

	message, err := svc.Create(actorFor(alice), CreateMessageInput{RecipientID: bob.ID, Body: "is the loft free in May?"})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}

	if _, err := svc.Get(actorFor(alice), message.ID); err != nil {
		t.Errorf("sender get: %v", err)
	}
	if _, err := svc.Get(actorFor(bob), message.ID); err != nil {
		t.Errorf("recipient get: %v", err)
	}
	if _, err := svc.Get(actorFor(carol), message.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("outsider get: err = %v, want ErrNotFound", err)
	}

	_, total, err := svc.List(actorFor(carol), 1, 20)
	if err != nil {
		t.Fatalf("outsider list: %v", err)
	}
	if total != 0 {
		t.Errorf("outsider list total = %d, want 0", total)
	}
}

func TestMessageListChronological(t *testing.T) {
	db := openTestDB(t)
	svc := NewMessageService(db)

	alice := seedUser(t, db, "alice@example.com", models.RoleGuest)
	bob := seedUser(t, db, "bob@example.com", models.RoleGuest)

	bodies := []string{"first", "second", "third"}
	for _, body := range bodies {
		if _, err := svc.Create(actorFor(alice), CreateMessageInput{RecipientID: bob.ID, Body: body}); err != nil {
			t.Fatalf("create %q: %v", body, err)
		}
	}

	messages, total, err := svc.List(actorFor(bob), 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	for i, body := range bodies {
		if messages[i].Body != body {
			t.Errorf("messages[%d].Body = %q, want %q", i, messages[i].Body, body)
		}
	}
}

func TestMessageMutationSenderOnly(t *testing.T) {
	db := openTestDB(t)
	svc := NewMessageService(db)

	alice := seedUser(t, db, "alice@example.com", models.RoleGuest)
	bob := seedUser(t, db, "bob@example.com", models.RoleGuest)

	message, err := svc.Create(actorFor(alice), CreateMessageInput{RecipientID: bob.ID, Body: "draft"})
	if err != nil {
		t.Fatalf("create message: %v", err)
	}

	if _, err := svc.UpdateBody(actorFor(bob), message.ID, "edited by recipient"); !errors.Is(err, ErrForbidden) {
		t.Errorf("recipient edit: err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(actorFor(bob), message.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("recipient delete: err = %v, want ErrForbidden", err)
	}

	updated, err := svc.UpdateBody(actorFor(alice), message.ID, "final")
	if err != nil {
		t.Fatalf("sender edit: %v", err)
	}
	if updated.Body != "final" {
		t.Errorf("body = %q, want %q", updated.Body, "final")
	}

	if err := svc.Delete(actorFor(alice), message.ID); err != nil {
		t.Errorf("sender delete: %v", err)
	}
}
