package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sainath-666/pgstay/internal/domain"
)

func newBookingsCmd(a *cliApp) *cobra.Command {
	var ownerView bool
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings (or bookings on your PGs with --owner)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := a.sessions.Current(ctx)
			if err != nil {
				return err
			}

			var bs []domain.Booking
			if ownerView {
				bs, err = a.owner.Bookings(ctx, id)
			} else {
				bs, err = a.bookings.MyBookings(ctx, id)
			}
			if err != nil {
				return err
			}
			if len(bs) == 0 {
				if ownerView {
					fmt.Fprintln(cmd.OutOrStdout(), "No bookings for your PGs yet.")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "No bookings yet.")
				}
				return nil
			}
			printBookings(cmd.OutOrStdout(), bs, ownerView)
			return nil
		},
	}
	cmd.Flags().BoolVar(&ownerView, "owner", false, "show bookings made against your listings")
	return cmd
}

func printBookings(w io.Writer, bs []domain.Booking, ownerView bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := "PG\tAREA\tROOM\tSTAY\tCHECK-IN\tAMOUNT\tSTATUS"
	if ownerView {
		header += "\tBOOKED BY"
	}
	fmt.Fprintln(tw, header)
	for _, b := range bs {
		name, area := "PG not found", ""
		if b.Listing != nil {
			name, area = b.Listing.Name, b.Listing.Area
		}
		stay := string(b.StayType)
		if b.StayType == domain.StayDaily && b.Days != nil {
			stay = fmt.Sprintf("daily · %dd", *b.Days)
		} else if b.StayType == domain.StayMonthly && b.Months != nil {
			stay = fmt.Sprintf("monthly · %dm", *b.Months)
		}
		checkin := b.CheckInDate
		if len(checkin) > 10 {
			checkin = checkin[:10]
		}
		row := fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t₹%.0f\t%s",
			name, area, b.RoomType, stay, checkin, b.TotalAmount, b.Status)
		if ownerView {
			by := "-"
			if b.User != nil {
				by = b.User.Name
				if b.User.Phone != "" {
					by += " (" + b.User.Phone + ")"
				}
			}
			row += "\t" + by
		}
		fmt.Fprintln(tw, row)
	}
	tw.Flush()
}
