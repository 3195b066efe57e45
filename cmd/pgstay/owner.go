package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sainath-666/pgstay/internal/domain"
)

func newOwnerCmd(a *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Manage your own PG listings",
	}
	cmd.AddCommand(newOwnerListingsCmd(a), newOwnerCreateCmd(a))
	return cmd
}

func newOwnerListingsCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "listings",
		Short: "List the PGs you own",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := a.sessions.Current(ctx)
			if err != nil {
				return err
			}
			ls, err := a.owner.Listings(ctx, id)
			if err != nil {
				return err
			}
			if len(ls) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "You have no PGs yet. Create one with `pgstay owner create`.")
				return nil
			}
			printListings(cmd.OutOrStdout(), ls)
			return nil
		},
	}
}

func newOwnerCreateCmd(a *cliApp) *cobra.Command {
	var (
		name        string
		area        string
		address     string
		gender      string
		food        bool
		amenities   string
		description string
		photos      []string
		roomType    string
		priceMonth  float64
		priceDay    float64
		beds        int
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new PG listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := a.sessions.Current(ctx)
			if err != nil {
				return err
			}

			draft := domain.ListingDraft{
				Name:        name,
				Area:        area,
				Address:     address,
				GenderType:  domain.GenderType(gender),
				HasFood:     food,
				Description: description,
				Amenities:   splitAmenities(amenities),
				Rooms: []domain.Room{{
					Type:          roomType,
					PricePerMonth: &priceMonth,
					PricePerDay:   &priceDay,
					TotalBeds:     beds,
					AvailableBeds: beds,
				}},
			}
			created, err := a.owner.Create(ctx, id, draft, photos)
			if err != nil {
				return err
			}
			a.listings.Invalidate(ctx, created.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "PG created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "listing name")
	cmd.Flags().StringVar(&area, "area", "", "area")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&gender, "gender", string(domain.GenderBoys), "boys, girls or co-ed")
	cmd.Flags().BoolVar(&food, "food", false, "food included")
	cmd.Flags().StringVar(&amenities, "amenities", "", "comma-separated amenities")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringArrayVar(&photos, "photo", nil, "photo file to upload (repeatable)")
	cmd.Flags().StringVar(&roomType, "room-type", "Single", "room type label")
	cmd.Flags().Float64Var(&priceMonth, "price-month", 8000, "monthly price")
	cmd.Flags().Float64Var(&priceDay, "price-day", 500, "daily price")
	cmd.Flags().IntVar(&beds, "beds", 10, "total beds in the room")
	return cmd
}

func splitAmenities(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if t := strings.TrimSpace(a); t != "" {
			out = append(out, t)
		}
	}
	return out
}
