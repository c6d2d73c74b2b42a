package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/auth"
	"github.com/Veraticus/the-income-must-flow/internal/cli"
	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the backend access token",
		Long: `Save, remove or inspect the bearer token sent with every income.

A token set in the config file (auth.token) or in INCOME_AUTH_TOKEN takes
precedence over the saved one.`,
	}

	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authLogoutCmd())
	cmd.AddCommand(authStatusCmd())

	return cmd
}

func authLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save an access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, _ := cmd.Flags().GetString("token")
			ttl, _ := cmd.Flags().GetDuration("expires-in")

			if token == "" {
				reader := cli.NewLineReader(cmd.InOrStdin())
				line, err := reader.Prompt(cmd.Context(), cmd.OutOrStdout(), "Access token: ")
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("failed to read token: %w", err)
				}
				token = line
			}
			token = strings.TrimSpace(token)
			if token == "" {
				return common.NewUserError("no token given", common.ErrMissingToken)
			}

			path, err := tokenPath()
			if err != nil {
				return err
			}
			if err := auth.SaveToken(path, auth.NewToken(token, ttl)); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Token saved to "+path))
			return nil
		},
	}

	cmd.Flags().String("token", "", "access token (prompted for when omitted)")
	cmd.Flags().Duration("expires-in", 0, "stop using the token after this long (0 never expires)")

	return cmd
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := tokenPath()
			if err != nil {
				return err
			}
			if err := auth.RemoveToken(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func authStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which access token will be used",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if configured := strings.TrimSpace(viper.GetString("auth.token")); configured != "" {
				fmt.Fprintln(out, cli.FormatSuccess("Using configured token "+auth.Fingerprint(configured)))
				return nil
			}

			path, err := tokenPath()
			if err != nil {
				return err
			}
			tok, err := auth.LoadToken(path)
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(out, cli.FormatWarning("Not logged in. Run 'income auth login'."))
				return nil
			}
			if err != nil {
				return err
			}

			if !tok.Valid() {
				fmt.Fprintln(out, cli.FormatWarning("Saved token "+auth.Fingerprint(tok.AccessToken)+" has expired"))
				return nil
			}

			line := "Using saved token " + auth.Fingerprint(tok.AccessToken)
			if !tok.Expiry.IsZero() {
				line += ", expires " + tok.Expiry.Format(time.RFC822)
			}
			fmt.Fprintln(out, cli.FormatSuccess(line))
			return nil
		},
	}
}
