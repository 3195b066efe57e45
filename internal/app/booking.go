package app

import (
	"context"
	"errors"
	"strings"

	"github.com/sainath-666/pgstay/internal/adapters/observability"
	"github.com/sainath-666/pgstay/internal/domain"
)

// BookingService runs the submission workflow: validate the draft, require
// an identity, submit once, surface the server's authoritative result.
type BookingService struct {
	api domain.MarketClient
}

func NewBookingService(api domain.MarketClient) *BookingService {
	return &BookingService{api: api}
}

// ValidateDraft checks the stay-type-specific required fields in a fixed
// order, short-circuiting on the first failure.
func ValidateDraft(d domain.BookingDraft) error {
	if d.RoomType == "" {
		return &domain.ValidationError{Field: domain.FieldRoomRequired}
	}
	if strings.TrimSpace(d.CheckInDate) == "" {
		return &domain.ValidationError{Field: domain.FieldCheckInRequired}
	}
	if d.StayType == domain.StayDaily && d.Days <= 0 {
		return &domain.ValidationError{Field: domain.FieldDaysRequired}
	}
	if d.StayType == domain.StayMonthly && d.Months <= 0 {
		return &domain.ValidationError{Field: domain.FieldMonthsRequired}
	}
	return nil
}

// Submit validates, gates on identity, and performs exactly one POST. There
// is no automatic retry: resubmission is a new booking and belongs to the
// user. The returned booking's status and totalAmount are the server's.
func (s *BookingService) Submit(ctx context.Context, draft domain.BookingDraft, id *domain.Identity) (domain.Booking, error) {
	if err := ValidateDraft(draft); err != nil {
		return domain.Booking{}, err
	}
	if id == nil || id.Token == "" {
		return domain.Booking{}, domain.ErrAuthRequired
	}

	req := domain.BookingRequest{
		ListingID:   draft.ListingID,
		RoomType:    draft.RoomType,
		StayType:    draft.StayType,
		CheckInDate: draft.CheckInDate,
	}
	// days and months are mutually exclusive on the wire
	if draft.StayType == domain.StayDaily {
		days := draft.Days
		req.Days = &days
	} else {
		months := draft.Months
		req.Months = &months
	}

	b, err := s.api.CreateBooking(ctx, id.Token, req)
	if err != nil {
		observability.ObserveBooking("error")
		return domain.Booking{}, &domain.SubmissionError{Message: serverMessage(err), Err: err}
	}
	observability.ObserveBooking(string(b.Status))
	return b, nil
}

// MyBookings lists the identity's own bookings.
func (s *BookingService) MyBookings(ctx context.Context, id *domain.Identity) ([]domain.Booking, error) {
	if id == nil || id.Token == "" {
		return nil, domain.ErrAuthRequired
	}
	bs, err := s.api.MyBookings(ctx, id.Token)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	return bs, nil
}

// PreviewTotal is the advisory pre-submission estimate (unit price × count).
// It is display-only and never sent to the server; nil when the selected
// room has no price for the stay type.
func PreviewTotal(room domain.Room, stay domain.StayType, count int) *float64 {
	if count <= 0 {
		return nil
	}
	var unit *float64
	switch stay {
	case domain.StayDaily:
		unit = room.PricePerDay
	case domain.StayMonthly:
		unit = room.PricePerMonth
	}
	if unit == nil {
		return nil
	}
	total := *unit * float64(count)
	return &total
}

func serverMessage(err error) string {
	var sm domain.ServerMessager
	if errors.As(err, &sm) {
		return sm.ServerMessage()
	}
	return ""
}
