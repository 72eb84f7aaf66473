package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/slackctl/slackctl/internal/api"
	"github.com/slackctl/slackctl/internal/config"
	"github.com/slackctl/slackctl/internal/workspace"
)

// Global configuration instance
var cfg *config.Config
var store *workspace.Store

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

func preRunConfigE(cmd *cobra.Command, _ []string) error {
	// Load configuration before any command runs
	var err error
	cfg, err = loadConfig(cmd)

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// check if verbose flag is set
	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	store, err = workspace.NewStore()
	if err != nil {
		return err
	}

	if err := store.Load(); err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	return nil
}

// workspaceSelector returns the workspace to use for this invocation:
// the --workspace flag when given, otherwise the configured default.
func workspaceSelector(cmd *cobra.Command) string {
	selector, err := cmd.Flags().GetString("workspace")
	if err == nil && len(selector) > 0 {
		return selector
	}
	return cfg.Workspace
}

// newAPIClient binds a client to the selected workspace.
func newAPIClient(cmd *cobra.Command) (*api.Client, error) {
	creds, err := store.Resolve(workspaceSelector(cmd))
	if err != nil {
		return nil, err
	}
	return api.New(creds)
}

// requestContext bounds one command's remote calls by the configured
// API timeout.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.API.Timeout)
}

var rootCmd = &cobra.Command{
	Use:   "slackctl",
	Short: "Slackctl - Slack from the command line",
	Long: `Slackctl is a command-line Slack client.

It talks to a workspace either with a standard bot/user OAuth token or
with a captured browser session (the "d" cookie plus its xoxc form
token), which also reaches the internal endpoints the web client uses.

Register a workspace with 'slackctl auth add-token' or
'slackctl auth from-curl', then list channels, read history, send
messages, search and upload files.`,
	PersistentPreRunE: preRunConfigE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {

	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $HOME/.config/slackctl/config.yaml)")
	rootCmd.PersistentFlags().StringP("workspace", "w", "", "Workspace to use (default is the stored default workspace)")

}

func GetCommandOptions() *cobra.Command {
	return rootCmd
}
