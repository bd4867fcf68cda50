package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staynest/staynest-backend/internal/cache"
	"github.com/staynest/staynest-backend/internal/models"
)

// memStore is an in-memory cache.Store for testing cache interaction.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return raw, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func TestCreatePropertyValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewPropertyService(db, nil)
	host := seedUser(t, db, "host@example.com", models.RoleHost)

	tests := []struct {
		name  string
		in    CreatePropertyInput
		valid bool
	}{
		{"blank name", CreatePropertyInput{Name: " ", Description: "d", Location: "l", PricePerNight: decimal.RequireFromString("10")}, false},
		{"blank location", CreatePropertyInput{Name: "n", Description: "d", Location: "", PricePerNight: decimal.RequireFromString("10")}, false},
		{"zero price", CreatePropertyInput{Name: "n", Description: "d", Location: "l", PricePerNight: decimal.Zero}, false},
		{"negative price", CreatePropertyInput{Name: "n", Description: "d", Location: "l", PricePerNight: decimal.RequireFromString("-5")}, false},
		{"valid", CreatePropertyInput{Name: "Cabin", Description: "Quiet", Location: "Porto", PricePerNight: decimal.RequireFromString("80.50")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(actorFor(host), tt.in)
			if tt.valid && err != nil {
				t.Errorf("err = %v, want nil", err)
			}
			if !tt.valid && !IsValidation(err) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestPropertyMutationHostOnly(t *testing.T) {
	db := openTestDB(t)
	svc := NewPropertyService(db, nil)
	ctx := context.Background()

	host := seedUser(t, db, "host@example.com", models.RoleHost)
	other := seedUser(t, db, "other@example.com", models.RoleHost)
	property := seedProperty(t, db, host, "100.00")

	name := "Renamed"
	if _, err := svc.Update(ctx, actorFor(other), property.ID, UpdatePropertyInput{Name: &name}); !errors.Is(err, ErrForbidden) {
		t.Errorf("other host update: err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, actorFor(other), property.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("other host delete: err = %v, want ErrForbidden", err)
	}

	updated, err := svc.Update(ctx, actorFor(host), property.ID, UpdatePropertyInput{Name: &name})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("name = %q, want %q", updated.Name, "Renamed")
	}

	if err := svc.Delete(ctx, actorFor(host), property.ID); err != nil {
		t.Errorf("owner delete: %v", err)
	}
	if _, err := svc.Get(ctx, property.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
}

func TestPropertyCacheRoundTripAndInvalidation(t *testing.T) {
	db := openTestDB(t)
	store := newMemStore()
	svc := NewPropertyService(db, store)
	ctx := context.Background()

	host := seedUser(t, db, "host@example.com", models.RoleHost)
	property := seedProperty(t, db, host, "100.00")

	// First read populates the cache.
	if _, err := svc.Get(ctx, property.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := store.Get(ctx, propertyKey(property.ID)); err != nil {
		t.Fatalf("cache not populated: %v", err)
	}

	// Second read is served from cache even after a raw DB change.
	if err := db.Model(&models.Property{}).Where("id = ?", property.ID).
		Update("name", "Changed behind the cache").Error; err != nil {
		t.Fatalf("raw update: %v", err)
	}
	cached, err := svc.Get(ctx, property.ID)
	if err != nil {
		t.Fatalf("cached get: %v", err)
	}
	if cached.Name != property.Name {
		t.Errorf("cached name = %q, want stale %q", cached.Name, property.Name)
	}

	// A service-level update invalidates, so the next read sees fresh data.
	name := "Fresh name"
	if _, err := svc.Update(ctx, actorFor(host), property.ID, UpdatePropertyInput{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	fresh, err := svc.Get(ctx, property.ID)
	if err != nil {
		t.Fatalf("fresh get: %v", err)
	}
	if fresh.Name != "Fresh name" {
		t.Errorf("name after invalidation = %q, want %q", fresh.Name, "Fresh name")
	}
}
