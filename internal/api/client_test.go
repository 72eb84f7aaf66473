package api

import (
	"context"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slackctl/slackctl/internal/workspace"
)

// fakeTransport records every dispatched call and hands the response
// to an optional handler for population. Calls may arrive from
// concurrent fan-out, so the record is guarded.
type fakeTransport struct {
	mu      sync.Mutex
	calls   []fakeCall
	handler func(method string, params Params, resp response) error
}

type fakeCall struct {
	method string
	params Params
}

func (f *fakeTransport) callAPI(_ context.Context, method string, params Params, resp response) error {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{method: method, params: params})
	f.mu.Unlock()

	if f.handler != nil {
		return f.handler(method, params, resp)
	}
	return nil
}

func newFakeClient(ft *fakeTransport) *Client {
	return &Client{
		creds:     &workspace.TokenCredentials{Team: "testing", Token: "xoxb-test", Kind: workspace.TokenKindBot},
		transport: ft,
		uploads:   resty.New(),
		log:       logrus.WithField("workspace", "testing"),
	}
}

func TestNewBindsTransportToCredentialsVariant(t *testing.T) {
	t.Run("token credentials get the bearer transport", func(t *testing.T) {
		client, err := New(&workspace.TokenCredentials{Team: "acme", Token: "xoxb-1"})
		require.NoError(t, err)
		assert.IsType(t, &tokenTransport{}, client.transport)
		assert.Equal(t, "acme", client.Workspace())
	})

	t.Run("session credentials get the cookie transport", func(t *testing.T) {
		client, err := New(&workspace.SessionCredentials{
			Team:      "acme",
			BaseURL:   "https://acme.slack.com",
			Cookie:    "xoxd-1",
			FormToken: "xoxc-1",
		})
		require.NoError(t, err)
		assert.IsType(t, &sessionTransport{}, client.transport)
	})
}
