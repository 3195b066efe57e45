package app_test

import (
	"context"
	"sync"
	"time"

	"github.com/sainath-666/pgstay/internal/domain"
)

// ---- fakes ----

type fakeMarket struct {
	mu sync.Mutex

	listings []domain.Listing
	listErr  error
	listHits int

	booking      domain.Booking
	bookingErr   error
	bookingHits  int
	bookingToken string
	bookingReq   domain.BookingRequest

	loginID   domain.Identity
	loginErr  error
	loginHits int

	created     domain.Listing
	createErr   error
	createHits  int
	createDraft domain.ListingDraft

	uploadErr  error
	uploadHits int

	myBookings    []domain.Booking
	ownerBookings []domain.Booking
	bookingsErr   error
}

func (f *fakeMarket) Login(ctx context.Context, emailOrPhone, password string) (domain.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginHits++
	return f.loginID, f.loginErr
}

func (f *fakeMarket) ListListings(ctx context.Context) ([]domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listHits++
	return f.listings, f.listErr
}

func (f *fakeMarket) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Listing{}, f.listErr
}

func (f *fakeMarket) CreateListing(ctx context.Context, token string, draft domain.ListingDraft) (domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createHits++
	f.createDraft = draft
	return f.created, f.createErr
}

func (f *fakeMarket) UploadPhoto(ctx context.Context, token, filePath string) (string, error) {
	f.mu.Lock()
	f.uploadHits++
	err := f.uploadErr
	f.mu.Unlock()
	if err != nil {
		return "", err
	}
	return "https://cdn.example.com/" + filePath, nil
}

func (f *fakeMarket) CreateBooking(ctx context.Context, token string, req domain.BookingRequest) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookingHits++
	f.bookingToken = token
	f.bookingReq = req
	return f.booking, f.bookingErr
}

func (f *fakeMarket) MyBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	return f.myBookings, f.bookingsErr
}

func (f *fakeMarket) OwnerBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	return f.ownerBookings, f.bookingsErr
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Listing:
		*d = v.([]domain.Listing)
	case *domain.Listing:
		*d = v.(domain.Listing)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

type fakeCreds struct {
	id *domain.Identity
}

func (c *fakeCreds) Identity(ctx context.Context) (*domain.Identity, error) { return c.id, nil }
func (c *fakeCreds) Save(ctx context.Context, id domain.Identity) error {
	c.id = &id
	return nil
}
func (c *fakeCreds) Clear(ctx context.Context) error {
	c.id = nil
	return nil
}

// ---- helpers ----

func pf(f float64) *float64 { return &f }
func ps(s string) *string   { return &s }

func userIdentity() *domain.Identity {
	return &domain.Identity{Token: "tok-user", User: domain.User{ID: "u1", Name: "Ravi", Role: domain.RoleUser}}
}

func ownerIdentity() *domain.Identity {
	return &domain.Identity{Token: "tok-owner", User: domain.User{ID: "o1", Name: "Lakshmi", Role: domain.RoleOwner}}
}
