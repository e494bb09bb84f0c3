// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/slacktime/slacktime-go"
	"github.com/slacktime/slacktime-go/cli/config"
	"github.com/slacktime/slacktime-go/cli/tokenstore"
	"github.com/slacktime/slacktime-go/core"
	"github.com/slacktime/slacktime-go/logging"
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// ClientFactory creates an API client using CLI config context.
type ClientFactory func(token string, cfg *config.Config, verbose bool, stderr io.Writer) *slacktime.Client

// StoreFactory creates a token store instance.
type StoreFactory func() (tokenstore.Store, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig   ConfigLoader
	createClient ClientFactory
	newStore     StoreFactory
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	cfgFile      string
	token        string
	profile      string
	jsonOutput   bool
	verbose      bool
	cfg          *config.Config
	chatChannel  string
	chatThreadTS string
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithClientFactory injects a client factory dependency.
func WithClientFactory(factory ClientFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.createClient = factory
		}
	}
}

// WithStoreFactory injects a token store factory dependency.
func WithStoreFactory(factory StoreFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newStore = factory
		}
	}
}

// WithIO injects process I/O streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdin != nil {
			a.stdin = stdin
		}
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig:   config.LoadConfig,
		createClient: defaultClientFactory,
		newStore:     tokenstore.NewStore,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "slacktime",
		Short: "Slacktime - Slack Web API client CLI",
		Long: `Slacktime is a command-line interface for the Slack Web API.

Use Slacktime to manage API tokens, post messages, and inspect workspaces.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		SilenceUsage: true,
	}

	// Global flags available to all commands.
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.slacktime/config.yaml)")
	root.PersistentFlags().StringVar(&a.token, "token", "", "Slack API token (overrides stored tokens)")
	root.PersistentFlags().StringVar(&a.profile, "profile", "", "token store profile name")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "emit JSON output")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(a.newAuthCommand())
	root.AddCommand(a.newChatCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) initConfig() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Apply config defaults if flags not set.
	if a.profile == "" && cfg.DefaultProfile != "" {
		a.profile = cfg.DefaultProfile
	}

	return nil
}

// resolveToken returns the effective API token: the --token flag, then
// the SLACK_API_TOKEN environment variable, then the token store profile.
func (a *App) resolveToken() (string, error) {
	if a.token != "" {
		return a.token, nil
	}
	if token := os.Getenv(slacktime.DefaultTokenEnvVar); token != "" {
		return token, nil
	}

	profile := a.profile
	if profile == "" {
		profile = "default"
	}

	store, err := a.newStore()
	if err != nil {
		return "", err
	}
	token, err := store.Get(profile)
	if err != nil {
		return "", fmt.Errorf("no token available: pass --token, set %s, or run 'slacktime auth login' (%w)",
			slacktime.DefaultTokenEnvVar, err)
	}
	return token, nil
}

// newClient builds an API client from the resolved token and config.
func (a *App) newClient() (*slacktime.Client, error) {
	token, err := a.resolveToken()
	if err != nil {
		return nil, err
	}
	return a.createClient(token, a.cfg, a.verbose, a.stderr), nil
}

func defaultClientFactory(token string, cfg *config.Config, verbose bool, stderr io.Writer) *slacktime.Client {
	var opts []core.Option
	if cfg != nil {
		if cfg.BaseURL != "" {
			opts = append(opts, core.WithBaseURL(cfg.BaseURL))
		}
		if cfg.TimeoutSeconds > 0 {
			opts = append(opts, core.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
		}
	}
	if verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
		opts = append(opts, core.WithHook(logging.NewHook(logger)))
	}
	return slacktime.New(token, opts...)
}

var defaultApp = NewApp()

// Execute runs the default app root command.
func Execute() error {
	return defaultApp.Execute()
}
