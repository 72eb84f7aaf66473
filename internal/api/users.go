package api

import (
	"context"

	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"
)

// resolveConcurrency bounds the fan-out of batch user resolution.
const resolveConcurrency = 8

type userResponse struct {
	Envelope
	User slack.User `json:"user"`
}

type usersListResponse struct {
	Envelope
	Members []slack.User `json:"members"`
}

// GetUser fetches a single user profile by ID.
func (c *Client) GetUser(ctx context.Context, userID string) (*slack.User, error) {
	params := Params{}
	params.set("user", userID)

	var resp userResponse
	if err := c.call(ctx, "users.info", params, &resp); err != nil {
		return nil, err
	}

	return &resp.User, nil
}

// ListUsers returns one page of the workspace member directory.
func (c *Client) ListUsers(ctx context.Context, limit int, cursor string) ([]slack.User, string, error) {
	params := Params{}
	params.setOptionalInt("limit", limit)
	params.setOptional("cursor", cursor)

	var resp usersListResponse
	if err := c.call(ctx, "users.list", params, &resp); err != nil {
		return nil, "", err
	}

	return resp.Members, resp.nextCursor(), nil
}

// UserResolution is the outcome of a batch lookup: the users that
// resolved plus the IDs that did not, both in input order.
type UserResolution struct {
	Resolved []slack.User
	Skipped  []string
}

// ResolveUsers looks up many user IDs concurrently. Partial success is
// the normal case: a lookup that fails is logged and its ID recorded as
// skipped, never surfaced as an error.
func (c *Client) ResolveUsers(ctx context.Context, userIDs []string) UserResolution {
	resolved := make([]*slack.User, len(userIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)

	for i, id := range userIDs {
		g.Go(func() error {
			user, err := c.GetUser(gctx, id)
			if err != nil {
				c.log.WithField("user", id).WithError(err).Debugln("Skipping unresolvable user")
				return nil
			}
			resolved[i] = user
			return nil
		})
	}

	// Workers swallow their own failures, Wait cannot fail.
	_ = g.Wait()

	var result UserResolution
	for i, id := range userIDs {
		if resolved[i] != nil {
			result.Resolved = append(result.Resolved, *resolved[i])
		} else {
			result.Skipped = append(result.Skipped, id)
		}
	}

	return result
}
