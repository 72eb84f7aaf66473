package api

import (
	"context"
	"strings"
)

// AddReaction attaches an emoji reaction to a message. The emoji name
// is accepted with or without surrounding colons.
func (c *Client) AddReaction(ctx context.Context, channelID, ts, name string) error {
	return c.react(ctx, "reactions.add", channelID, ts, name)
}

// RemoveReaction removes a previously added emoji reaction.
func (c *Client) RemoveReaction(ctx context.Context, channelID, ts, name string) error {
	return c.react(ctx, "reactions.remove", channelID, ts, name)
}

func (c *Client) react(ctx context.Context, method, channelID, ts, name string) error {
	params := Params{}
	params.set("channel", channelID)
	params.set("timestamp", ts)
	params.set("name", strings.Trim(name, ":"))

	var resp Envelope
	return c.call(ctx, method, params, &resp)
}
