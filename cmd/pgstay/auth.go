package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email-or-phone> <password>",
		Short: "Log in and cache the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.sessions.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", id.User.Name, id.User.Role)
			return nil
		},
	}
}

func newLogoutCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the cached session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.sessions.Current(cmd.Context())
			if err != nil {
				return err
			}
			if id == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)", id.User.Name, id.User.Role)
			if id.User.Phone != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " · %s", id.User.Phone)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
