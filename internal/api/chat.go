package api

import (
	"context"

	"github.com/slack-go/slack"
)

// PostMessageRequest carries one outbound message. ThreadTS turns the
// message into a thread reply when set.
type PostMessageRequest struct {
	Channel  string
	Text     string
	ThreadTS string
}

type chatResponse struct {
	Envelope
	Channel string    `json:"channel"`
	TS      string    `json:"ts"`
	Message slack.Msg `json:"message"`
}

// PostMessage posts a message and returns the timestamp the server
// assigned to it.
func (c *Client) PostMessage(ctx context.Context, req PostMessageRequest) (string, error) {
	params := Params{}
	params.set("channel", req.Channel)
	params.set("text", req.Text)
	params.setOptional("thread_ts", req.ThreadTS)

	var resp chatResponse
	if err := c.call(ctx, "chat.postMessage", params, &resp); err != nil {
		return "", err
	}

	return resp.TS, nil
}

// UpdateMessage replaces the text of a previously posted message.
func (c *Client) UpdateMessage(ctx context.Context, channelID, ts, text string) error {
	params := Params{}
	params.set("channel", channelID)
	params.set("ts", ts)
	params.set("text", text)

	var resp chatResponse
	return c.call(ctx, "chat.update", params, &resp)
}

// DeleteMessage removes a previously posted message.
func (c *Client) DeleteMessage(ctx context.Context, channelID, ts string) error {
	params := Params{}
	params.set("channel", channelID)
	params.set("ts", ts)

	var resp chatResponse
	return c.call(ctx, "chat.delete", params, &resp)
}
