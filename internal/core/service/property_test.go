package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/propchase/rental-api/internal/core/domain"
	"github.com/propchase/rental-api/internal/core/ports"
)

type stubPropertyRepo struct {
	properties map[string]*domain.Property
	nextID     int
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{properties: make(map[string]*domain.Property)}
}

func cloneProperty(p *domain.Property) *domain.Property {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.nextID++
	copy := cloneProperty(p)
	copy.ID = fmt.Sprintf("prop_%d", r.nextID)
	r.properties[copy.ID] = cloneProperty(copy)
	return copy, nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return cloneProperty(p), nil
}

func (r *stubPropertyRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Property, error) {
	var result []*domain.Property
	for i := 1; i <= r.nextID; i++ {
		if p, ok := r.properties[fmt.Sprintf("prop_%d", i)]; ok && p.OwnerID == ownerID {
			result = append(result, cloneProperty(p))
		}
	}
	return result, nil
}

func (r *stubPropertyRepo) FindAll(_ context.Context) ([]*domain.Property, error) {
	var result []*domain.Property
	for i := 1; i <= r.nextID; i++ {
		if p, ok := r.properties[fmt.Sprintf("prop_%d", i)]; ok {
			result = append(result, cloneProperty(p))
		}
	}
	return result, nil
}

func (r *stubPropertyRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Property, error) {
	byID := make(map[string]*domain.Property)
	for _, id := range ids {
		if p, ok := r.properties[id]; ok {
			byID[id] = cloneProperty(p)
		}
	}
	return byID, nil
}

func (r *stubPropertyRepo) Update(_ context.Context, id string, fields ports.PropertyFields) (*domain.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	p.Title = fields.Title
	p.Address = fields.Address
	p.Description = fields.Description
	p.ExtraInfo = fields.ExtraInfo
	p.Perks = fields.Perks
	p.Photos = fields.Photos
	p.CheckIn = fields.CheckIn
	p.CheckOut = fields.CheckOut
	p.MaxGuests = fields.MaxGuests
	p.Price = fields.Price
	p.UpdatedAt = time.Now().UTC()
	return cloneProperty(p), nil
}

func sampleFields(title string) ports.PropertyFields {
	return ports.PropertyFields{
		Title:     title,
		Address:   "1 Main St",
		CheckIn:   "14:00",
		CheckOut:  "11:00",
		MaxGuests: 4,
		Price:     120,
	}
}

func TestPropertyCreateSetsOwner(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, newStubUserRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), "alice", sampleFields("Beach hut"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.OwnerID != "alice" {
		t.Fatalf("owner not set from subject: %q", created.OwnerID)
	}
}

func TestPropertyUpdateOwnership(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, newStubUserRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), "alice", sampleFields("Cabin"))

	// A different authenticated subject is denied.
	if _, err := svc.Update(context.Background(), "mallory", created.ID, sampleFields("Stolen cabin")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// The owner succeeds, and ownership stays intact.
	updated, err := svc.Update(context.Background(), "alice", created.ID, sampleFields("Renamed cabin"))
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Renamed cabin" {
		t.Fatalf("update not applied: %q", updated.Title)
	}
	if updated.OwnerID != "alice" {
		t.Fatalf("owner changed on update: %q", updated.OwnerID)
	}
}

func TestPropertyUpdateNotFoundBeforeForbidden(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), newStubUserRepo(), zerolog.Nop())

	// An unknown id is a not-found for everyone, owner or not.
	if _, err := svc.Update(context.Background(), "anyone", "missing", sampleFields("x")); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyGetExpandsOwner(t *testing.T) {
	users := newStubUserRepo()
	owner, _ := users.Create(context.Background(), &domain.User{
		Email:       "owner@example.com",
		DisplayName: "Olive Owner",
		Bio:         "hi",
		AvatarRef:   "photos/a.jpg",
	})

	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, users, zerolog.Nop())
	created, _ := svc.Create(context.Background(), owner.ID, sampleFields("Loft"))

	detail, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.Owner.DisplayName != "Olive Owner" {
		t.Fatalf("owner profile not expanded: %+v", detail.Owner)
	}
	if detail.Owner.AvatarRef != "photos/a.jpg" {
		t.Fatalf("avatar ref missing: %+v", detail.Owner)
	}
}

func TestPropertyGetUnknown(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), newStubUserRepo(), zerolog.Nop())
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyListByOwner(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, newStubUserRepo(), zerolog.Nop())

	_, _ = svc.Create(context.Background(), "alice", sampleFields("A1"))
	_, _ = svc.Create(context.Background(), "bob", sampleFields("B1"))
	_, _ = svc.Create(context.Background(), "alice", sampleFields("A2"))

	mine, err := svc.ListByOwner(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(mine))
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(all))
	}
}
