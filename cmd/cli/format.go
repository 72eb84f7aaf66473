package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

// formatTimestamp renders a message timestamp ("1700000000.123456") as
// local wall-clock time, falling back to the raw value.
func formatTimestamp(ts string) string {
	seconds, _, _ := strings.Cut(ts, ".")
	epoch, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil {
		return ts
	}
	return time.Unix(epoch, 0).Format("2006-01-02 15:04:05")
}

// printMessage renders one message line: timestamp, author, text.
func printMessage(msg slack.Message) {
	author := msg.User
	if len(author) == 0 {
		author = msg.Username
	}
	if len(author) == 0 {
		author = msg.BotID
	}

	fmt.Printf("%s  %s  %s\n",
		timestampStyle.Render(formatTimestamp(msg.Timestamp)),
		authorStyle.Render(author),
		msg.Text)

	if msg.ReplyCount > 0 {
		fmt.Printf("      %s\n", infoStyle.Render(
			fmt.Sprintf("%d replies in thread %s", msg.ReplyCount, msg.Timestamp)))
	}
}
