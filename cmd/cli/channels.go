package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slackctl/slackctl/internal/api"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List conversations in the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd)
		if err != nil {
			return err
		}

		types, _ := cmd.Flags().GetString("types")
		limit, _ := cmd.Flags().GetInt("limit")
		cursor, _ := cmd.Flags().GetString("cursor")
		includeArchived, _ := cmd.Flags().GetBool("archived")

		ctx, cancel := requestContext()
		defer cancel()

		channels, next, err := client.ListConversations(ctx, api.ListConversationsRequest{
			Types:           splitTypes(types),
			ExcludeArchived: !includeArchived,
			Limit:           limit,
			Cursor:          cursor,
		})
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Conversations in %s", client.Workspace())))
		fmt.Println()

		for _, channel := range channels {
			name := channelStyle.Render("#" + channel.Name)
			if channel.IsArchived {
				name = archivedStyle.Render("#" + channel.Name)
			}
			fmt.Printf("%s  %s\n", name, timestampStyle.Render(channel.ID))
		}

		if len(next) > 0 {
			fmt.Println()
			fmt.Println(infoStyle.Render(fmt.Sprintf("More available, continue with --cursor %s", next)))
		}

		return nil
	},
}

func splitTypes(types string) []string {
	if len(types) == 0 {
		return nil
	}
	return strings.Split(types, ",")
}

func init() {
	channelsCmd.Flags().String("types", "public_channel", "Conversation types, comma separated (public_channel, private_channel, mpim, im)")
	channelsCmd.Flags().Int("limit", 100, "Page size")
	channelsCmd.Flags().String("cursor", "", "Continuation cursor from a previous page")
	channelsCmd.Flags().Bool("archived", false, "Include archived conversations")

	rootCmd.AddCommand(channelsCmd)
}
