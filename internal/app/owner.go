package app

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/sainath-666/pgstay/internal/domain"
)

// OwnerService covers the owner-side flows: listing inventory, creating a
// listing (with photo uploads), and bookings made against owned listings.
type OwnerService struct {
	api           domain.MarketClient
	uploadWorkers int64
}

func NewOwnerService(api domain.MarketClient, uploadWorkers int) *OwnerService {
	if uploadWorkers <= 0 {
		uploadWorkers = 4
	}
	return &OwnerService{api: api, uploadWorkers: int64(uploadWorkers)}
}

func requireOwner(id *domain.Identity) error {
	if id == nil || id.Token == "" {
		return domain.ErrAuthRequired
	}
	if id.User.Role != domain.RoleOwner {
		return domain.ErrOwnerOnly
	}
	return nil
}

// Listings returns the listings owned by the identity. The backend exposes
// no per-owner endpoint, so this filters the full set by owner id.
func (s *OwnerService) Listings(ctx context.Context, id *domain.Identity) ([]domain.Listing, error) {
	if err := requireOwner(id); err != nil {
		return nil, err
	}
	all, err := s.api.ListListings(ctx)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	mine := make([]domain.Listing, 0, len(all))
	for _, l := range all {
		if l.Owner != nil && l.Owner.ID == id.User.ID {
			mine = append(mine, l)
		}
	}
	return mine, nil
}

// Create validates the draft, uploads photos with bounded concurrency, and
// posts the listing. Only the backend-returned photo URLs go in the payload.
func (s *OwnerService) Create(ctx context.Context, id *domain.Identity, draft domain.ListingDraft, photoPaths []string) (domain.Listing, error) {
	if err := requireOwner(id); err != nil {
		return domain.Listing{}, err
	}
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Area) == "" || strings.TrimSpace(draft.Address) == "" {
		return domain.Listing{}, &domain.ValidationError{Field: domain.FieldListingRequired}
	}

	if len(photoPaths) > 0 {
		urls, err := s.uploadPhotos(ctx, id.Token, photoPaths)
		if err != nil {
			return domain.Listing{}, &domain.SubmissionError{Message: serverMessage(err), Err: err}
		}
		draft.Photos = append(draft.Photos, urls...)
	}

	created, err := s.api.CreateListing(ctx, id.Token, draft)
	if err != nil {
		return domain.Listing{}, &domain.SubmissionError{Message: serverMessage(err), Err: err}
	}
	return created, nil
}

// uploadPhotos fans out uploads under a weighted semaphore, preserving the
// input order in the returned URLs.
func (s *OwnerService) uploadPhotos(ctx context.Context, token string, paths []string) ([]string, error) {
	sem := semaphore.NewWeighted(s.uploadWorkers)
	urls := make([]string, len(paths))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, p := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			defer sem.Release(1)
			u, err := s.api.UploadPhoto(ctx, token, p)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			urls[i] = u
		}(i, p)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return urls, nil
}

// Bookings lists bookings made against the identity's listings.
func (s *OwnerService) Bookings(ctx context.Context, id *domain.Identity) ([]domain.Booking, error) {
	if err := requireOwner(id); err != nil {
		return nil, err
	}
	bs, err := s.api.OwnerBookings(ctx, id.Token)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	return bs, nil
}
