package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sainath-666/pgstay/internal/app"
	"github.com/sainath-666/pgstay/internal/domain"
)

func newBookCmd(a *cliApp) *cobra.Command {
	var (
		room    string
		stay    string
		checkin string
		days    int
		months  int
	)
	cmd := &cobra.Command{
		Use:   "book <listing-id>",
		Short: "Book a room in a PG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := a.sessions.Current(ctx)
			if err != nil {
				return err
			}

			draft := domain.BookingDraft{
				ListingID:   args[0],
				RoomType:    room,
				StayType:    domain.StayType(stay),
				CheckInDate: checkin,
				Days:        days,
				Months:      months,
			}

			// advisory estimate only; the server computes the real amount
			if l, lerr := a.listings.Get(ctx, draft.ListingID); lerr == nil {
				for _, r := range l.Rooms {
					if r.Type != draft.RoomType {
						continue
					}
					count := draft.Months
					if draft.StayType == domain.StayDaily {
						count = draft.Days
					}
					if p := app.PreviewTotal(r, draft.StayType, count); p != nil {
						fmt.Fprintf(cmd.OutOrStdout(), "Estimated total: ₹%.0f (final amount is set by the server)\n", *p)
					}
				}
			}

			b, err := a.bookings.Submit(ctx, draft, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Booking created with status: %s\n", b.Status)
			if b.TotalAmount > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Total amount: ₹%.0f\n", b.TotalAmount)
			}
			return nil
		},
	}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	cmd.Flags().StringVar(&room, "room", "", "room type to book")
	cmd.Flags().StringVar(&stay, "stay", string(domain.StayMonthly), "daily or monthly")
	cmd.Flags().StringVar(&checkin, "checkin", tomorrow, "check-in date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 0, "number of days (daily stay)")
	cmd.Flags().IntVar(&months, "months", 1, "number of months (monthly stay)")
	return cmd
}
