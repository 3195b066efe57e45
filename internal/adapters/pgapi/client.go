// internal/adapters/pgapi/client.go
package pgapi

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/sainath-666/pgstay/internal/adapters/observability"
	"github.com/sainath-666/pgstay/internal/domain"
)

// Client talks to the PG marketplace backend. The 10s timeout is the
// backend's documented client default; retries apply to GETs only, so a
// booking submission is always exactly one request on the wire.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 10 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// APIError is a non-2xx response. Message holds the backend's "message"
// field when the error body carried one; RetryAfter mirrors the Retry-After
// header on 429/5xx responses.
type APIError struct {
	Status     int
	Message    string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

func (e *APIError) ServerMessage() string { return e.Message }

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	}
	return nil
}

// ---- Public API ----

type listingsEnvelope struct {
	Listings []domain.Listing `json:"pgs"`
}

type listingEnvelope struct {
	Listing *domain.Listing `json:"pg"`
}

type bookingEnvelope struct {
	Booking domain.Booking `json:"booking"`
}

type bookingsEnvelope struct {
	Bookings []domain.Booking `json:"bookings"`
}

type loginEnvelope struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type uploadEnvelope struct {
	URL string `json:"url"`
}

func (c *Client) Login(ctx context.Context, emailOrPhone, password string) (domain.Identity, error) {
	body := map[string]string{"emailOrPhone": emailOrPhone, "password": password}
	var env loginEnvelope
	if err := c.post(ctx, "login", "/api/auth/login", "", body, &env); err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{Token: env.Token, User: env.User}, nil
}

func (c *Client) ListListings(ctx context.Context) ([]domain.Listing, error) {
	var env listingsEnvelope
	if err := c.get(ctx, "listings", "/api/pgs", "", &env); err != nil {
		return nil, err
	}
	return env.Listings, nil
}

func (c *Client) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	var env listingEnvelope
	if err := c.get(ctx, "listing", "/api/pgs/"+id, "", &env); err != nil {
		return domain.Listing{}, err
	}
	if env.Listing == nil {
		return domain.Listing{}, &APIError{Status: http.StatusNotFound, Message: "pg not found"}
	}
	return *env.Listing, nil
}

func (c *Client) CreateListing(ctx context.Context, token string, draft domain.ListingDraft) (domain.Listing, error) {
	var env listingEnvelope
	if err := c.post(ctx, "create_listing", "/api/pgs", token, draft, &env); err != nil {
		return domain.Listing{}, err
	}
	if env.Listing == nil {
		return domain.Listing{}, nil
	}
	return *env.Listing, nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, req domain.BookingRequest) (domain.Booking, error) {
	var env bookingEnvelope
	if err := c.post(ctx, "create_booking", "/api/bookings", token, req, &env); err != nil {
		return domain.Booking{}, err
	}
	return env.Booking, nil
}

func (c *Client) MyBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var env bookingsEnvelope
	if err := c.get(ctx, "my_bookings", "/api/bookings/my", token, &env); err != nil {
		return nil, err
	}
	return env.Bookings, nil
}

func (c *Client) OwnerBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var env bookingsEnvelope
	if err := c.get(ctx, "owner_bookings", "/api/bookings/owner", token, &env); err != nil {
		return nil, err
	}
	return env.Bookings, nil
}

// UploadPhoto sends one image file and returns the URL the backend stored it
// under. Storage/CDN behavior is entirely the backend's.
func (c *Client) UploadPhoto(ctx context.Context, token, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", filepath.Base(filePath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var env uploadEnvelope
	if err := c.send(ctx, "upload_photo", http.MethodPost, "/api/uploads", token, &buf, mw.FormDataContentType(), &env); err != nil {
		return "", err
	}
	return env.URL, nil
}

// ---- Internals ----

// get performs a GET with client-side rate limiting and retries on 429 and
// transient 5xx, honoring Retry-After when provided. Safe only because GETs
// here are idempotent reads.
func (c *Client) get(ctx context.Context, endpoint, path, token string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		err := c.once(ctx, endpoint, http.MethodGet, path, token, nil, "", out)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		wait := time.Duration(0)
		var ae *APIError
		retryable := isTransport(err)
		if errors.As(err, &ae) {
			retryable = ae.Status == http.StatusTooManyRequests || ae.Status >= 500
			wait = ae.RetryAfter
		}
		if !retryable {
			return err
		}
		if wait == 0 {
			wait = backoff(i)
		}
		lastErr = err
		if i < 3 && sleepCtx(ctx, wait) {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return lastErr
	}
	return lastErr
}

// post performs a single JSON POST. Never retried: resubmission would create
// a second booking/listing server-side.
func (c *Client) post(ctx context.Context, endpoint, path, token string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.send(ctx, endpoint, http.MethodPost, path, token, bytes.NewReader(b), "application/json", out)
}

func (c *Client) send(ctx context.Context, endpoint, method, path, token string, body io.Reader, contentType string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	return c.once(ctx, endpoint, method, path, token, body, contentType, out)
}

func (c *Client) once(ctx context.Context, endpoint, method, path, token string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "pgstay/1.0")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("pgapi", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &transportError{err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal("pgapi", endpoint, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNoContent:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	default:
		return &APIError{
			Status:     resp.StatusCode,
			Message:    serverMessage(resp.Body),
			RetryAfter: retryAfter(resp),
		}
	}
}

type transportError struct{ err error }

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func isTransport(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}

// serverMessage pulls {"message": "..."} out of an error body, falling back
// to the raw (truncated) body text.
func serverMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(b))
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% concurrency-safe jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if
// absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
