package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slackctl/slackctl/internal/api"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search messages across the workspace",
	Long: `Search messages across the workspace.

Search requires a user-scoped credential: a user token or a browser
session. Bot tokens are rejected by the server.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		page, _ := cmd.Flags().GetInt("page")
		sort, _ := cmd.Flags().GetString("sort")
		sortDir, _ := cmd.Flags().GetString("sort-dir")

		query := strings.Join(args, " ")

		ctx, cancel := requestContext()
		defer cancel()

		results, err := client.SearchMessages(ctx, query, api.SearchRequest{
			Count:   count,
			Page:    page,
			Sort:    sort,
			SortDir: sortDir,
		})
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("%d matches for %q", results.Total, query)))
		fmt.Println()

		for _, match := range results.Matches {
			fmt.Printf("%s  %s  %s\n      %s\n",
				timestampStyle.Render(formatTimestamp(match.Timestamp)),
				channelStyle.Render("#"+match.Channel.Name),
				authorStyle.Render(match.Username),
				match.Text)
		}

		if results.Paging.Pages > results.Paging.Page {
			fmt.Println()
			fmt.Println(infoStyle.Render(fmt.Sprintf(
				"Page %d of %d, continue with --page %d",
				results.Paging.Page, results.Paging.Pages, results.Paging.Page+1)))
		}

		return nil
	},
}

func init() {
	searchCmd.Flags().Int("count", 20, "Results per page")
	searchCmd.Flags().Int("page", 0, "Result page to fetch")
	searchCmd.Flags().String("sort", "", "Sort by 'score' or 'timestamp'")
	searchCmd.Flags().String("sort-dir", "", "Sort direction, 'asc' or 'desc'")

	rootCmd.AddCommand(searchCmd)
}
