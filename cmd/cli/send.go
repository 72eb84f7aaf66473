package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slackctl/slackctl/internal/api"
)

var sendCmd = &cobra.Command{
	Use:   "send <channel> <text>...",
	Short: "Send a message",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd)
		if err != nil {
			return err
		}

		thread, _ := cmd.Flags().GetString("thread")
		text := strings.Join(args[1:], " ")

		ctx, cancel := requestContext()
		defer cancel()

		channelID, err := client.ResolveChannel(ctx, args[0])
		if err != nil {
			return err
		}

		ts, err := client.PostMessage(ctx, api.PostMessageRequest{
			Channel:  channelID,
			Text:     text,
			ThreadTS: thread,
		})
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Sent (ts %s)", ts)))
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <channel> <ts> <text>...",
	Short: "Edit a previously sent message",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if err := client.UpdateMessage(ctx, channelID, args[1], strings.Join(args[2:], " ")); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Updated"))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <channel> <ts>",
	Short: "Delete a previously sent message",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if err := client.DeleteMessage(ctx, channelID, args[1]); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Deleted"))
		return nil
	},
}

func init() {
	sendCmd.Flags().String("thread", "", "Send as a reply in this thread")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
}
