package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slackctl/slackctl/internal/workspace"
)

func TestTokenTransportRequestShape(t *testing.T) {
	var captured *http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		require.NoError(t, r.ParseForm())
		w.Write([]byte(`{"ok": true, "channel": "C123", "ts": "1700000000.000100"}`))
	}))
	defer srv.Close()

	transport := newTokenTransport(&workspace.TokenCredentials{
		Team:  "testing",
		Token: "xoxb-123",
		Kind:  workspace.TokenKindBot,
	})
	transport.baseURL = srv.URL

	params := Params{}
	params.set("channel", "C123")
	params.set("text", "hello")
	params.setOptional("thread_ts", "")

	var resp chatResponse
	err := transport.callAPI(context.Background(), "chat.postMessage", params, &resp)
	require.NoError(t, err)

	assert.Equal(t, "/chat.postMessage", captured.URL.Path)
	assert.Equal(t, "Bearer xoxb-123", captured.Header.Get("Authorization"))

	// Required parameters pass through verbatim, absent optionals not at all.
	assert.Equal(t, "C123", captured.PostForm.Get("channel"))
	assert.Equal(t, "hello", captured.PostForm.Get("text"))
	_, present := captured.PostForm["thread_ts"]
	assert.False(t, present)

	assert.Equal(t, "1700000000.000100", resp.TS)
}

func TestTokenTransportNormalizesFailures(t *testing.T) {
	t.Run("network failure becomes an APIError", func(t *testing.T) {
		transport := newTokenTransport(&workspace.TokenCredentials{Token: "xoxb-123"})
		transport.baseURL = "http://127.0.0.1:1"

		var resp Envelope
		err := transport.callAPI(context.Background(), "auth.test", Params{}, &resp)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "auth.test", apiErr.Method)
	})

	t.Run("malformed body becomes an APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<!doctype html>`))
		}))
		defer srv.Close()

		transport := newTokenTransport(&workspace.TokenCredentials{Token: "xoxb-123"})
		transport.baseURL = srv.URL

		var resp Envelope
		err := transport.callAPI(context.Background(), "auth.test", Params{}, &resp)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
	})
}
