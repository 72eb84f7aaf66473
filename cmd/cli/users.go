package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users [id]...",
	Short: "List workspace members or resolve user IDs",
	Long: `List workspace members, or resolve the given user IDs.

Resolution is best effort: IDs that cannot be looked up are reported
as skipped rather than failing the whole batch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()

		if len(args) > 0 {
			result := client.ResolveUsers(ctx, args)

			for _, user := range result.Resolved {
				fmt.Printf("%s  %s  %s\n",
					timestampStyle.Render(user.ID),
					authorStyle.Render(user.Name),
					user.RealName)
			}

			if len(result.Skipped) > 0 {
				fmt.Println()
				fmt.Println(errorStyle.Render(fmt.Sprintf("Skipped: %v", result.Skipped)))
			}

			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		cursor, _ := cmd.Flags().GetString("cursor")

		users, next, err := client.ListUsers(ctx, limit, cursor)
		if err != nil {
			return err
		}

		for _, user := range users {
			fmt.Printf("%s  %s  %s\n",
				timestampStyle.Render(user.ID),
				authorStyle.Render(user.Name),
				user.RealName)
		}

		if len(next) > 0 {
			fmt.Println()
			fmt.Println(infoStyle.Render(fmt.Sprintf("More available, continue with --cursor %s", next)))
		}

		return nil
	},
}

func init() {
	usersCmd.Flags().Int("limit", 100, "Page size when listing")
	usersCmd.Flags().String("cursor", "", "Continuation cursor from a previous page")

	rootCmd.AddCommand(usersCmd)
}
