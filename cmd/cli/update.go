package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/slackctl/slackctl/internal/common"
	"github.com/slackctl/slackctl/internal/updater"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update slackctl to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg != nil && cfg.Updates.Disabled {
			return fmt.Errorf("updates are disabled in the configuration")
		}

		version, _, ok := common.GetModuleBuildInfo()
		if !ok {
			return fmt.Errorf("failed to get version information")
		}

		u := updater.NewUpdater(releaseOwner, releaseRepo, version)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		release, err := u.CheckForUpdate(ctx)
		if err != nil {
			return err
		}

		if release == nil {
			fmt.Println(successStyle.Render("Already running the latest version"))
			return nil
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			var confirmed bool
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Update to %s?", release.GetTagName())).
						Description("The running binary will be replaced in place").
						Value(&confirmed),
				),
			)
			if err := form.Run(); err != nil {
				return fmt.Errorf("update prompt cancelled: %w", err)
			}
			if !confirmed {
				return nil
			}
		}

		if err := u.Apply(ctx, release); err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Updated to %s", release.GetTagName())))
		return nil
	},
}

func init() {
	updateCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(updateCmd)
}
