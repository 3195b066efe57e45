package main

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sainath-666/pgstay/internal/adapters/credstore"
	"github.com/sainath-666/pgstay/internal/adapters/observability"
	"github.com/sainath-666/pgstay/internal/adapters/pgapi"
	rediscache "github.com/sainath-666/pgstay/internal/adapters/redis"
	"github.com/sainath-666/pgstay/internal/app"
	"github.com/sainath-666/pgstay/internal/domain"
	"github.com/sainath-666/pgstay/internal/shared"
)

// cliApp wires the adapters into the services. Each command borrows from
// here; nothing holds state across invocations beyond the credential file.
type cliApp struct {
	cfg      shared.Config
	sessions *app.SessionService
	bookings *app.BookingService
	listings *app.ListingQueryService
	owner    *app.OwnerService
}

func newCLIApp() *cliApp {
	_ = godotenv.Load()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)
	observability.Serve()

	api := pgapi.New(cfg.APIBaseURL, cfg.APIRPS)
	creds := credstore.New(cfg.CredentialsPath)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = rediscache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	engine := app.NewFilterEngine(app.ParseSearchScope(cfg.SearchScope))

	return &cliApp{
		cfg:      cfg,
		sessions: app.NewSessionService(api, creds),
		bookings: app.NewBookingService(api),
		listings: app.NewListingQueryService(api, cache, cfg.CacheTTL, engine),
		owner:    app.NewOwnerService(api, cfg.UploadWorkers),
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pgstay",
		Short:         "Browse and book PG stays from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a := newCLIApp()
	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newListingsCmd(a),
		newListingCmd(a),
		newBookCmd(a),
		newBookingsCmd(a),
		newOwnerCmd(a),
	)
	return root
}

// userMessage maps the error taxonomy to the inline messages shown to the
// user; no error leaves the CLI silently.
func userMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return validationMessage(ve.Field)
	}
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		return "You are not logged in. Run `pgstay login` first."
	case errors.Is(err, domain.ErrOwnerOnly):
		return "Only PG owners can use this command."
	case errors.Is(err, domain.ErrNotFound):
		return "Not found. It may have been removed."
	}
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		return "Failed to load data: " + fe.Err.Error() + ". Please try again."
	}
	var se *domain.SubmissionError
	if errors.As(err, &se) {
		return se.Error()
	}
	return err.Error()
}

func validationMessage(field string) string {
	switch field {
	case domain.FieldRoomRequired:
		return "Please select a room type first."
	case domain.FieldCheckInRequired:
		return "Please enter a check-in date."
	case domain.FieldDaysRequired:
		return "Please enter the number of days."
	case domain.FieldMonthsRequired:
		return "Please enter the number of months."
	case domain.FieldCredentialsRequired:
		return "Please enter email/phone and password."
	case domain.FieldListingRequired:
		return "Please fill in name, area and address."
	}
	return "Missing or invalid field: " + field
}
