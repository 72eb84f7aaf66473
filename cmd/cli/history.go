package cli

import (
	"fmt"

	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/slackctl/slackctl/internal/api"
)

var historyCmd = &cobra.Command{
	Use:   "history <channel>",
	Short: "Read a conversation's message history",
	Long: `Read a conversation's message history, newest first.

The channel may be given as an ID (C…) or as a #name. With --thread,
reads the replies of one thread instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd)
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		cursor, _ := cmd.Flags().GetString("cursor")
		oldest, _ := cmd.Flags().GetString("oldest")
		latest, _ := cmd.Flags().GetString("latest")
		thread, _ := cmd.Flags().GetString("thread")

		ctx, cancel := requestContext()
		defer cancel()

		channelID, err := client.ResolveChannel(ctx, args[0])
		if err != nil {
			return err
		}

		req := api.HistoryRequest{
			Limit:  limit,
			Cursor: cursor,
			Oldest: oldest,
			Latest: latest,
		}

		var messages []slack.Message
		var next string

		if len(thread) > 0 {
			messages, next, err = client.Replies(ctx, channelID, thread, req)
		} else {
			messages, next, err = client.History(ctx, channelID, req)
		}
		if err != nil {
			return err
		}

		for _, msg := range messages {
			printMessage(msg)
		}

		if len(next) > 0 {
			fmt.Println()
			fmt.Println(infoStyle.Render(fmt.Sprintf("More available, continue with --cursor %s", next)))
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of messages to fetch")
	historyCmd.Flags().String("cursor", "", "Continuation cursor from a previous page")
	historyCmd.Flags().String("oldest", "", "Only messages after this timestamp")
	historyCmd.Flags().String("latest", "", "Only messages before this timestamp")
	historyCmd.Flags().String("thread", "", "Read the thread under this parent timestamp")

	rootCmd.AddCommand(historyCmd)
}
