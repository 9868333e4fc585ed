package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/edgeguard/internal/api/apierr"
	"github.com/mcoot/edgeguard/internal/api/response"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded games via the status API",
	}

	cmd.AddCommand(newHistorySessionsCmd())
	cmd.AddCommand(newHistorySessionCmd())
	cmd.AddCommand(newHistoryTurnsCmd())

	return cmd
}

func newHistorySessionsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recent sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/sessions"
			if limit > 0 {
				path += fmt.Sprintf("?limit=%d", limit)
			}

			var result response.SessionList
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			NewOutput(settings.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum sessions to list (default: server default)")

	return cmd
}

func newHistorySessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session <id>",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session
			if err := client.Get(cmd.Context(), "/api/v1/sessions/"+url.PathEscape(args[0]), &result); err != nil {
				return sessionError(args[0], err)
			}

			NewOutput(settings.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newHistoryTurnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "turns <id>",
		Short: "List the turns recorded for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.TurnList
			if err := client.Get(cmd.Context(), "/api/v1/sessions/"+url.PathEscape(args[0])+"/turns", &result); err != nil {
				return sessionError(args[0], err)
			}

			NewOutput(settings.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

// sessionError explains a missing session; history entries expire with the store TTL
func sessionError(id string, err error) error {
	if apierr.HasCode(err, apierr.CodeSessionNotFound) {
		return fmt.Errorf("no session %q on the server (it may have expired): %w", id, err)
	}
	return err
}
