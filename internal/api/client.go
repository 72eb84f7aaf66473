package api

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/slackctl/slackctl/internal/workspace"
)

// transport executes one logical API call against the wire. Both
// implementations decode the JSON body into resp, check its envelope
// and normalize every failure into *APIError.
type transport interface {
	callAPI(ctx context.Context, method string, params Params, resp response) error
}

// Client is the typed surface over one workspace. The transport is
// chosen once, from the credentials variant, at construction; the
// binding never changes for the lifetime of the client. A client holds
// no mutable state after New and is safe for concurrent use.
type Client struct {
	creds     workspace.Credentials
	transport transport
	uploads   *resty.Client
	log       *logrus.Entry
}

// New builds a client bound to the given workspace credentials. An
// unknown credentials variant is a construction bug, not a runtime
// condition, and is rejected outright.
func New(creds workspace.Credentials) (*Client, error) {
	var t transport

	switch c := creds.(type) {
	case *workspace.TokenCredentials:
		t = newTokenTransport(c)
	case *workspace.SessionCredentials:
		t = newSessionTransport(c)
	default:
		return nil, fmt.Errorf("unsupported credentials type %T", creds)
	}

	return &Client{
		creds:     creds,
		transport: t,
		uploads:   resty.New(),
		log:       logrus.WithField("workspace", creds.TeamName()),
	}, nil
}

// Workspace returns the name the client's credentials were stored under.
func (c *Client) Workspace() string {
	return c.creds.TeamName()
}

// call dispatches one logical API call through the bound transport.
func (c *Client) call(ctx context.Context, method string, params Params, resp response) error {
	c.log.WithFields(logrus.Fields{
		"method": method,
		"params": len(params),
	}).Debugln("Calling API method")

	return c.transport.callAPI(ctx, method, params, resp)
}

// AuthTestResponse reports who the bound credentials authenticate as.
type AuthTestResponse struct {
	Envelope
	URL    string `json:"url"`
	Team   string `json:"team"`
	User   string `json:"user"`
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
	BotID  string `json:"bot_id,omitempty"`
}

// AuthTest verifies the bound credentials against the workspace.
func (c *Client) AuthTest(ctx context.Context) (*AuthTestResponse, error) {
	var resp AuthTestResponse
	if err := c.call(ctx, "auth.test", Params{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
