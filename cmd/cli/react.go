package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reactCmd = &cobra.Command{
	Use:   "react",
	Short: "Manage emoji reactions",
}

var reactAddCmd = &cobra.Command{
	Use:   "add <channel> <ts> <emoji>",
	Short: "Add an emoji reaction to a message",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReaction(cmd, args, true)
	},
}

var reactRemoveCmd = &cobra.Command{
	Use:   "rm <channel> <ts> <emoji>",
	Short: "Remove an emoji reaction from a message",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReaction(cmd, args, false)
	},
}

func runReaction(cmd *cobra.Command, args []string, add bool) error {
	client, err := newAPIClient(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	channelID, err := client.ResolveChannel(ctx, args[0])
	if err != nil {
		return err
	}

	if add {
		err = client.AddReaction(ctx, channelID, args[1], args[2])
	} else {
		err = client.RemoveReaction(ctx, channelID, args[1], args[2])
	}
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render("Done"))
	return nil
}

func init() {
	reactCmd.AddCommand(reactAddCmd)
	reactCmd.AddCommand(reactRemoveCmd)

	rootCmd.AddCommand(reactCmd)
}
