package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slackctl/slackctl/internal/api"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload files to a conversation",
	Long: `Upload one or more files and attach them to a conversation as a
single message. Files are uploaded sequentially; any failure aborts
the batch before anything is attached.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient(cmd)
		if err != nil {
			return err
		}

		channel, _ := cmd.Flags().GetString("channel")
		thread, _ := cmd.Flags().GetString("thread")
		comment, _ := cmd.Flags().GetString("comment")
		titles, _ := cmd.Flags().GetStringArray("title")

		if len(channel) == 0 {
			return fmt.Errorf("--channel is required")
		}

		files := make([]api.LocalFile, len(args))
		for i, path := range args {
			files[i] = api.LocalFile{Path: path}
			if i < len(titles) {
				files[i].Title = titles[i]
			}
		}

		ctx, cancel := requestContext()
		defer cancel()

		channelID, err := client.ResolveChannel(ctx, channel)
		if err != nil {
			return err
		}

		entries, err := client.UploadFiles(ctx, api.UploadRequest{
			Channel:  channelID,
			ThreadTS: thread,
			Comment:  comment,
			Files:    files,
			Progress: api.ProgressFunc(func(step string) {
				fmt.Println(infoStyle.Render(step))
			}),
		})
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Uploaded %d file(s)", len(entries))))
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringP("channel", "c", "", "Conversation to attach the files to")
	uploadCmd.Flags().String("thread", "", "Attach inside this thread")
	uploadCmd.Flags().String("comment", "", "Message text shown with the files")
	uploadCmd.Flags().StringArray("title", nil, "Display title per file, in argument order")

	rootCmd.AddCommand(uploadCmd)
}
