package api

import (
	"context"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUsersPartialSuccess(t *testing.T) {
	failing := map[string]bool{"U002": true, "U004": true}

	ft := &fakeTransport{
		handler: func(method string, params Params, resp response) error {
			id := params["user"]
			if failing[id] {
				return remoteError(method, "user_not_found")
			}
			r := resp.(*userResponse)
			r.Ok = true
			r.User = slack.User{ID: id, Name: "user-" + id}
			return nil
		},
	}
	client := newFakeClient(ft)

	ids := []string{"U001", "U002", "U003", "U004", "U005"}
	result := client.ResolveUsers(context.Background(), ids)

	// N inputs, K individual failures: exactly N-K resolved, K skipped,
	// input order preserved, and no error surfaced anywhere.
	require.Len(t, result.Resolved, 3)
	assert.Equal(t, "U001", result.Resolved[0].ID)
	assert.Equal(t, "U003", result.Resolved[1].ID)
	assert.Equal(t, "U005", result.Resolved[2].ID)
	assert.Equal(t, []string{"U002", "U004"}, result.Skipped)
}

func TestResolveUsersAllFail(t *testing.T) {
	ft := &fakeTransport{
		handler: func(method string, params Params, resp response) error {
			return remoteError(method, "user_not_found")
		},
	}
	client := newFakeClient(ft)

	result := client.ResolveUsers(context.Background(), []string{"U001", "U002"})

	assert.Empty(t, result.Resolved)
	assert.Equal(t, []string{"U001", "U002"}, result.Skipped)
}

func TestResolveUsersEmptyInput(t *testing.T) {
	ft := &fakeTransport{}
	client := newFakeClient(ft)

	result := client.ResolveUsers(context.Background(), nil)

	assert.Empty(t, result.Resolved)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, ft.calls)
}
