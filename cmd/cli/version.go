package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/slackctl/slackctl/internal/common"
	"github.com/slackctl/slackctl/internal/updater"
)

const (
	releaseOwner = "slackctl"
	releaseRepo  = "slackctl"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		version, gitCommit, ok := common.GetModuleBuildInfo()

		if !ok {
			fmt.Println("Failed to get version information")
			return
		}

		fmt.Printf("slackctl %s", version)
		if gitCommit != "unknown" && len(gitCommit) > 0 {
			if len(gitCommit) > 8 {
				fmt.Printf(" (git: %s)", gitCommit[:8])
			} else {
				fmt.Printf(" (git: %s)", gitCommit)
			}
		}
		fmt.Println()

		if cfg != nil && cfg.Updates.Disabled {
			return
		}

		u := updater.NewUpdater(releaseOwner, releaseRepo, version)

		// Short timeout; the version command should never hang on the network
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		release, err := u.CheckForUpdate(ctx)
		if err != nil {
			fmt.Println("(failed to check for updates)")
			return
		}

		if release == nil {
			fmt.Println(successStyle.Render("You're running the latest version"))
		} else {
			fmt.Println(infoStyle.Render(fmt.Sprintf("New version available: %s", release.GetTagName())))
			fmt.Println("   Run 'slackctl update' to upgrade")
		}
	},
}

func init() {

	rootCmd.AddCommand(versionCmd)
}
