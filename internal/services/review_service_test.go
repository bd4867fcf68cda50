package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/staynest/staynest-backend/internal/models"
)

func TestCreateReviewValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewReviewService(db)

	host := seedUser(t, db, "host@example.com", models.RoleHost)
	guest := seedUser(t, db, "guest@example.com", models.RoleGuest)
	property := seedProperty(t, db, host, "100.00")

	tests := []struct {
		name    string
		rating  int
		comment string
		wantOK  bool
	}{
		{"rating below range", 0, "fine", false},
		{"rating above range", 6, "fine", false},
		{"blank comment", 4, "   ", false},
		{"lowest valid rating", 1, "grim", true},
		{"highest valid rating", 5, "great", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Fresh author per valid case; one review per (property, user).
			author := guest
			if tt.wantOK {
				author = seedUser(t, db, uuid.NewString()+"@example.com", models.RoleGuest)
			}
			_, err := svc.Create(actorFor(author), CreateReviewInput{
				PropertyID: property.ID,
				Rating:     tt.rating,
				Comment:    tt.comment,
			})
			if tt.wantOK && err != nil {
				t.Errorf("err = %v, want nil", err)
			}
			if !tt.wantOK && !IsValidation(err) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestCreateReviewDuplicatePair(t *testing.T) {
	db := openTestDB(t)
	svc := NewReviewService(db)

	host := seedUser(t, db, "host@example.com", models.RoleHost)
	guest := seedUser(t, db, "guest@example.com", models.RoleGuest)
	property := seedProperty(t, db, host, "100.00")

	in := CreateReviewInput{PropertyID: property.ID, Rating: 4, Comment: "lovely"}
	if _, err := svc.Create(actorFor(guest), in); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := svc.Create(actorFor(guest), in); !errors.Is(err, ErrConflict) {
		t.Errorf("second review: err = %v, want ErrConflict", err)
	}

	// A different author may still review the same property.
	other := seedUser(t, db, "other@example.com", models.RoleGuest)
	if _, err := svc.Create(actorFor(other), in); err != nil {
		t.Errorf("other author: %v", err)
	}
}

func TestCreateReviewUnknownProperty(t *testing.T) {
	db := openTestDB(t)
	svc := NewReviewService(db)

	guest := seedUser(t, db, "guest@example.com", models.RoleGuest)

	_, err := svc.Create(actorFor(guest), CreateReviewInput{
		PropertyID: uuid.New(),
		Rating:     3,
		Comment:    "ok",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReviewMutationAuthorOnly(t *testing.T) {
	db := openTestDB(t)
	svc := NewReviewService(db)

	host := seedUser(t, db, "host@example.com", models.RoleHost)
	guest := seedUser(t, db, "guest@example.com", models.RoleGuest)
	other := seedUser(t, db, "other@example.com", models.RoleGuest)
	property := seedProperty(t, db, host, "100.00")

	review, err := svc.Create(actorFor(guest), CreateReviewInput{
		PropertyID: property.ID,
		Rating:     3,
		Comment:    "average",
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}

	// Reads are public, even for the host and unrelated users.
	if _, err := svc.Get(review.ID); err != nil {
		t.Errorf("get: %v", err)
	}

	rating := 5
	if _, err := svc.Update(actorFor(other), review.ID, UpdateReviewInput{Rating: &rating}); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-author update: err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(actorFor(host), review.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("host delete: err = %v, want ErrForbidden", err)
	}

	updated, err := svc.Update(actorFor(guest), review.ID, UpdateReviewInput{Rating: &rating})
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if updated.Rating != 5 {
		t.Errorf("rating = %d, want 5", updated.Rating)
	}

	if err := svc.Delete(actorFor(guest), review.ID); err != nil {
		t.Errorf("author delete: %v", err)
	}
}

func TestReviewListFilterByProperty(t *testing.T) {
	db := openTestDB(t)
	svc := NewReviewService(db)

	host := seedUser(t, db, "host@example.com", models.RoleHost)
	guest := seedUser(t, db, "guest@example.com", models.RoleGuest)
	first := seedProperty(t, db, host, "100.00")
	second := seedProperty(t, db, host, "200.00")

	for _, p := range []*models.Property{first, second} {
		if _, err := svc.Create(actorFor(guest), CreateReviewInput{
			PropertyID: p.ID,
			Rating:     4,
			Comment:    "nice",
		}); err != nil {
			t.Fatalf("create review: %v", err)
		}
	}

	_, total, err := svc.List(nil, 1, 20)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}

	reviews, total, err := svc.List(&first.ID, 1, 20)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if total != 1 || len(reviews) != 1 {
		t.Fatalf("filtered total = %d len = %d, want 1 and 1", total, len(reviews))
	}
	if reviews[0].PropertyID != first.ID {
		t.Errorf("review property = %s, want %s", reviews[0].PropertyID, first.ID)
	}
}
