package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage workspace credentials",
	Long: `Manage the workspaces slackctl can talk to.

A workspace is registered either with a bot/user OAuth token
(add-token) or with a captured browser session (add-session,
from-curl). The two modes are mutually exclusive per workspace.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listWorkspaces()
	},
}

var authListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered workspaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listWorkspaces()
	},
}

// listWorkspaces displays all registered workspaces and their auth mode
func listWorkspaces() error {
	fmt.Println(titleStyle.Render("Registered Workspaces"))

	names := store.Names()
	if len(names) == 0 {
		fmt.Println(infoStyle.Render("No workspaces registered. Run 'slackctl auth add-token' or 'slackctl auth from-curl'"))
		return nil
	}

	defaultName := store.Default()

	for _, name := range names {
		mode, err := store.AuthMode(name)
		if err != nil {
			return err
		}

		line := fmt.Sprintf("%s  %s", channelStyle.Render(name), infoStyle.Render("("+mode+")"))
		if name == defaultName {
			line += "  " + defaultBadgeStyle.Render("default")
		}
		fmt.Println(line)
	}

	return nil
}

var authUseCmd = &cobra.Command{
	Use:   "use <workspace>",
	Short: "Set the default workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.SetDefault(args[0]); err != nil {
			return err
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("Default workspace set to %s", args[0])))
		return nil
	},
}

var authRemoveCmd = &cobra.Command{
	Use:   "remove <workspace>",
	Short: "Remove a registered workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Remove(args[0]); err != nil {
			return err
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("Removed workspace %s", args[0])))
		return nil
	},
}

func init() {
	authCmd.AddCommand(authListCmd)
	authCmd.AddCommand(authUseCmd)
	authCmd.AddCommand(authRemoveCmd)

	rootCmd.AddCommand(authCmd)
}
