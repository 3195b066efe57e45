package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sainath-666/pgstay/internal/app"
	"github.com/sainath-666/pgstay/internal/domain"
)

func newListingsCmd(a *cliApp) *cobra.Command {
	var (
		area   string
		gender string
		food   bool
		budget string
	)
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Browse PG listings with filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := domain.FilterCriteria{
				Area:      area,
				Gender:    gender,
				FoodOnly:  food,
				MaxBudget: budget,
			}
			ls, err := a.listings.Browse(cmd.Context(), criteria)
			if err != nil {
				return err
			}
			if len(ls) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No PGs match your filters.")
				return nil
			}
			printListings(cmd.OutOrStdout(), ls)
			return nil
		},
	}
	cmd.Flags().StringVar(&area, "area", "", "search term (matches per SEARCH_SCOPE)")
	cmd.Flags().StringVar(&gender, "gender", domain.GenderAll, "all, boys, girls or co-ed")
	cmd.Flags().BoolVar(&food, "food", false, "only listings that include food")
	cmd.Flags().StringVar(&budget, "budget", "", "maximum monthly budget")
	return cmd
}

func newListingCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "listing <id>",
		Short: "Show one PG in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.listings.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printListingDetail(cmd.OutOrStdout(), l)
			return nil
		},
	}
}

func printListings(w io.Writer, ls []domain.Listing) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tAREA\tGENDER\tFOOD\tFROM/MONTH\tBEDS FREE")
	for _, l := range ls {
		from := "-"
		if p := app.MinMonthlyPrice(l); p != nil {
			from = fmt.Sprintf("₹%.0f", *p)
		}
		total, free := 0, 0
		for _, r := range l.Rooms {
			total += r.TotalBeds
			free += r.AvailableBeds
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d/%d\n",
			l.ID, l.Name, l.Area, l.GenderType, yesNo(l.HasFood), from, free, total)
	}
	tw.Flush()
}

func printListingDetail(w io.Writer, l domain.Listing) {
	fmt.Fprintf(w, "%s (%s)\n", l.Name, l.ID)
	loc := l.Area
	if l.City != nil && *l.City != "" {
		loc += ", " + *l.City
	}
	fmt.Fprintf(w, "Location: %s\n", loc)
	if l.Address != nil && *l.Address != "" {
		fmt.Fprintf(w, "Address: %s\n", *l.Address)
	}
	fmt.Fprintf(w, "Gender: %s · Food: %s\n", l.GenderType, yesNo(l.HasFood))
	if len(l.Amenities) > 0 {
		fmt.Fprintf(w, "Amenities: %s\n", strings.Join(l.Amenities, ", "))
	}
	if l.Description != nil && *l.Description != "" {
		fmt.Fprintf(w, "\n%s\n", *l.Description)
	}
	if len(l.Rooms) > 0 {
		fmt.Fprintln(w, "\nRooms:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  TYPE\tPER MONTH\tPER DAY\tBEDS FREE")
		for _, r := range l.Rooms {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%d/%d\n",
				r.Type, price(r.PricePerMonth), price(r.PricePerDay), r.AvailableBeds, r.TotalBeds)
		}
		tw.Flush()
	}
	if l.Owner != nil {
		fmt.Fprintf(w, "\nOwner: %s", l.Owner.Name)
		if l.Owner.Phone != "" {
			fmt.Fprintf(w, " · %s", l.Owner.Phone)
		}
		fmt.Fprintln(w)
	}
	if len(l.Photos) > 0 {
		fmt.Fprintf(w, "Photos: %s\n", strings.Join(l.Photos, "\n        "))
	}
}

func price(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("₹%.0f", *p)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
