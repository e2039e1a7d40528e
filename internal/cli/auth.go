package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/session"

	"github.com/spf13/cobra"
)

// authed wraps a run func so it only runs with a restored session.
func authed(s *state, run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := s.app.RequireAuth(); err != nil {
			return err
		}
		err := run(cmd, args)
		printToasts(cmd.OutOrStdout(), s.app.Toaster)
		return err
	}
}

func newLoginCommand(s *state) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" || password == "" {
				return session.ErrMissingFields
			}
			user, err := s.app.Session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Logged in as "+user.FullName()))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCommand(s *state) *cobra.Command {
	var params session.RegisterParams
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := s.app.Session.Register(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Welcome, "+user.FullName()))
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Firstname, "firstname", "", "first name")
	cmd.Flags().StringVar(&params.Lastname, "lastname", "", "last name")
	cmd.Flags().StringVar(&params.Email, "email", "", "account email")
	cmd.Flags().StringVar(&params.Password, "password", "", "password, at least 6 characters")
	return cmd
}

func newLogoutCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.app.Session.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoAmICommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.app.RequireAuth(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			user := s.app.Session.CurrentUser()
			printTitle(out, user.FullName())
			fmt.Fprintf(out, "email: %s\n", user.Email)

			expiry, err := s.app.Session.TokenExpiry()
			switch {
			case errors.Is(err, session.ErrNoExpiry):
				printMuted(out, "token never expires")
			case err != nil:
				printMuted(out, "token expiry unknown: %s", err)
			case expiry.Before(time.Now()):
				fmt.Fprintln(out, errorStyle.Render("token expired at "+expiry.Format(time.RFC3339)))
			default:
				printMuted(out, "token expires at %s", expiry.Format(time.RFC3339))
			}
			return nil
		},
	}
}
