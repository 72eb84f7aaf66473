package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/slackctl/slackctl/internal/api"
	"github.com/slackctl/slackctl/internal/common"
	"github.com/slackctl/slackctl/internal/workspace"
)

var authAddTokenCmd = &cobra.Command{
	Use:   "add-token <workspace>",
	Short: "Register a workspace with a bot or user OAuth token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		token, err := cmd.Flags().GetString("token")
		if err != nil {
			return err
		}

		if len(token) == 0 {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("OAuth token").
						Description("A bot (xoxb-) or user (xoxp-) token for this workspace").
						EchoMode(huh.EchoModePassword).
						Value(&token),
				),
			)
			if err := form.Run(); err != nil {
				return fmt.Errorf("token prompt cancelled: %w", err)
			}
		}

		creds, err := workspace.NewTokenCredentials(name, token, "")
		if err != nil {
			return err
		}

		// Verify the token against the workspace before storing it.
		ctx, cancel := requestContext()
		defer cancel()

		identity, err := slack.New(creds.Token).AuthTestContext(ctx)
		if err != nil {
			return fmt.Errorf("token verification failed: %w", err)
		}

		if err := store.AddToken(creds); err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf(
			"Registered %s as %s on %s", name, identity.User, identity.Team)))
		return nil
	},
}

var authAddSessionCmd = &cobra.Command{
	Use:   "add-session <workspace>",
	Short: "Register a workspace with a captured browser session",
	Long: `Register a workspace with a captured browser session.

Copy the "d" cookie and the xoxc form token out of a logged-in browser
tab, or use 'slackctl auth from-curl' to extract both from a copied
cURL command.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: requireSessionFlagsE,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		baseURL, _ := cmd.Flags().GetString("url")
		cookie, _ := cmd.Flags().GetString("cookie")
		formToken, _ := cmd.Flags().GetString("form-token")

		creds, err := workspace.NewSessionCredentials(name, baseURL, cookie, formToken)
		if err != nil {
			return err
		}

		return registerSessionWorkspace(creds)
	},
}

func requireSessionFlagsE(cmd *cobra.Command, _ []string) error {
	for _, flag := range []string{"url", "cookie", "form-token"} {
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			return err
		}
		if len(value) == 0 {
			return fmt.Errorf("--%s is required", flag)
		}
	}
	return nil
}

var authFromCurlCmd = &cobra.Command{
	Use:   "from-curl <workspace> [curl command]",
	Short: "Register a session workspace from a copied cURL command",
	Long: `Register a session workspace from a "Copy as cURL" command.

In the browser's network inspector, right-click any /api/ request in a
logged-in tab and copy it as cURL. Pass the command as arguments or
leave it out to read it from the clipboard.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		var command string
		if len(args) > 1 {
			command = strings.Join(args[1:], " ")
		} else {
			var err error
			command, err = common.ReadClipboard()
			if err != nil {
				return err
			}
			fmt.Println(infoStyle.Render("Using cURL command from clipboard"))
		}

		captured, err := common.ParseCurlCommand(command)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"workspace": name,
			"url":       captured.BaseURL,
		}).Debugln("Parsed session capture")

		creds, err := workspace.NewSessionCredentials(
			name, captured.BaseURL, captured.Cookie, captured.FormToken)
		if err != nil {
			return err
		}

		return registerSessionWorkspace(creds)
	},
}

// registerSessionWorkspace verifies captured session credentials with a
// live auth.test through the session transport, then stores them.
func registerSessionWorkspace(creds *workspace.SessionCredentials) error {
	client, err := api.New(creds)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	identity, err := client.AuthTest(ctx)
	if err != nil {
		return fmt.Errorf("session verification failed: %w", err)
	}

	if err := store.AddSession(creds); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf(
		"Registered %s as %s on %s", creds.Team, identity.User, identity.Team)))
	return nil
}

func init() {
	authAddTokenCmd.Flags().String("token", "", "OAuth token (prompted for when omitted)")

	authAddSessionCmd.Flags().String("url", "", "Workspace URL, e.g. https://myteam.slack.com")
	authAddSessionCmd.Flags().String("cookie", "", "Value of the browser's 'd' session cookie")
	authAddSessionCmd.Flags().String("form-token", "", "The xoxc form token the web client sends")

	authCmd.AddCommand(authAddTokenCmd)
	authCmd.AddCommand(authAddSessionCmd)
	authCmd.AddCommand(authFromCurlCmd)
}
