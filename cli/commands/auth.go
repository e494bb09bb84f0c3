package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (a *App) newAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Slack API tokens",
	}

	cmd.AddCommand(a.newAuthLoginCommand())
	cmd.AddCommand(a.newAuthTestCommand())
	cmd.AddCommand(a.newAuthLogoutCommand())
	cmd.AddCommand(a.newAuthListCommand())

	return cmd
}

func (a *App) newAuthLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store a Slack API token",
		Long:  `Prompt for a Slack API token and store it encrypted under the active profile.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.promptToken()
			if err != nil {
				return err
			}
			if token == "" {
				return fmt.Errorf("no token provided")
			}

			profile := a.profile
			if profile == "" {
				profile = "default"
			}

			store, err := a.newStore()
			if err != nil {
				return err
			}
			if err := store.Set(profile, token); err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Token stored for profile %q\n", profile)
			return nil
		},
	}
}

func (a *App) newAuthTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check authentication and identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}

			env, err := client.Auth.Test(cmd.Context())
			if err != nil {
				return err
			}

			if a.jsonOutput {
				fmt.Fprintln(a.stdout, string(env.Raw))
				return nil
			}

			fmt.Fprintf(a.stdout, "ok: authenticated as %s on team %s\n", env.String("user"), env.String("team"))
			fmt.Fprintf(a.stdout, "  user id: %s\n", env.String("user_id"))
			fmt.Fprintf(a.stdout, "  team id: %s\n", env.String("team_id"))
			return nil
		},
	}
}

func (a *App) newAuthLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token for the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := a.profile
			if profile == "" {
				profile = "default"
			}

			store, err := a.newStore()
			if err != nil {
				return err
			}
			if err := store.Delete(profile); err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Token removed for profile %q\n", profile)
			return nil
		},
	}
}

func (a *App) newAuthListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored token profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.newStore()
			if err != nil {
				return err
			}
			profiles, err := store.List()
			if err != nil {
				return err
			}

			if len(profiles) == 0 {
				fmt.Fprintln(a.stdout, "No tokens stored")
				return nil
			}
			for _, profile := range profiles {
				fmt.Fprintln(a.stdout, profile)
			}
			return nil
		},
	}
}

// promptToken reads a token without echo when stdin is a terminal, and
// falls back to a plain line read otherwise.
func (a *App) promptToken() (string, error) {
	fmt.Fprint(a.stdout, "Slack API token: ")

	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stdout)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
