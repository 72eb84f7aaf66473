package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark <channel> [ts]",
	Short: "Mark a conversation as read",
	Long: `Mark a conversation as read up to a message timestamp.

Without a timestamp the most recent message is marked; an empty
conversation is left untouched.`,
	Args: cobra.RangeArgs(1, 2),
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

		ts := ""
		if len(args) > 1 {
			ts = args[1]
		}

		if err := client.MarkRead(ctx, channelID, ts); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Marked as read"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(markCmd)
}
