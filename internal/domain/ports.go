package domain

import (
	"context"
	"time"
)

// MarketClient is the remote marketplace API. Implementations attach the
// given bearer token; an empty token means an unauthenticated call.
type MarketClient interface {
	Login(ctx context.Context, emailOrPhone, password string) (Identity, error)

	ListListings(ctx context.Context) ([]Listing, error)
	GetListing(ctx context.Context, id string) (Listing, error)
	CreateListing(ctx context.Context, token string, draft ListingDraft) (Listing, error)
	UploadPhoto(ctx context.Context, token, filePath string) (string, error)

	CreateBooking(ctx context.Context, token string, req BookingRequest) (Booking, error)
	MyBookings(ctx context.Context, token string) ([]Booking, error)
	OwnerBookings(ctx context.Context, token string) ([]Booking, error)
}

// CredentialStore holds the cached identity. Identity returns nil when no
// login is cached.
type CredentialStore interface {
	Identity(ctx context.Context) (*Identity, error)
	Save(ctx context.Context, id Identity) error
	Clear(ctx context.Context) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
