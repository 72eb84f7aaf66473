package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// resolvePageSize is how many conversations each page of a name lookup
// requests. 200 is the documented maximum for conversations.list.
const resolvePageSize = 200

// ListConversationsRequest carries the optional knobs of
// conversations.list. Zero values are omitted from the wire.
type ListConversationsRequest struct {
	Types           []string
	ExcludeArchived bool
	Limit           int
	Cursor          string
}

type conversationsListResponse struct {
	Envelope
	Channels []slack.Channel `json:"channels"`
}

// ListConversations returns one page of conversations plus the cursor
// for the next page, empty when the listing is exhausted.
func (c *Client) ListConversations(ctx context.Context, req ListConversationsRequest) ([]slack.Channel, string, error) {
	params := Params{}
	params.setOptional("types", strings.Join(req.Types, ","))
	params.setOptionalBool("exclude_archived", req.ExcludeArchived)
	params.setOptionalInt("limit", req.Limit)
	params.setOptional("cursor", req.Cursor)

	var resp conversationsListResponse
	if err := c.call(ctx, "conversations.list", params, &resp); err != nil {
		return nil, "", err
	}

	return resp.Channels, resp.nextCursor(), nil
}

// HistoryRequest carries the optional knobs of conversations.history
// and conversations.replies.
type HistoryRequest struct {
	Limit     int
	Cursor    string
	Oldest    string
	Latest    string
	Inclusive bool
}

type historyResponse struct {
	Envelope
	Messages []slack.Message `json:"messages"`
	HasMore  bool            `json:"has_more"`
}

// History reads one page of a conversation's message history, newest
// first, returning the messages and the next-page cursor.
func (c *Client) History(ctx context.Context, channelID string, req HistoryRequest) ([]slack.Message, string, error) {
	params := Params{}
	params.set("channel", channelID)
	params.setOptionalInt("limit", req.Limit)
	params.setOptional("cursor", req.Cursor)
	params.setOptional("oldest", req.Oldest)
	params.setOptional("latest", req.Latest)
	params.setOptionalBool("inclusive", req.Inclusive)

	var resp historyResponse
	if err := c.call(ctx, "conversations.history", params, &resp); err != nil {
		return nil, "", err
	}

	return resp.Messages, resp.nextCursor(), nil
}

// Replies reads one page of a thread, given the parent message
// timestamp.
func (c *Client) Replies(ctx context.Context, channelID, threadTS string, req HistoryRequest) ([]slack.Message, string, error) {
	params := Params{}
	params.set("channel", channelID)
	params.set("ts", threadTS)
	params.setOptionalInt("limit", req.Limit)
	params.setOptional("cursor", req.Cursor)
	params.setOptional("oldest", req.Oldest)
	params.setOptional("latest", req.Latest)
	params.setOptionalBool("inclusive", req.Inclusive)

	var resp historyResponse
	if err := c.call(ctx, "conversations.replies", params, &resp); err != nil {
		return nil, "", err
	}

	return resp.Messages, resp.nextCursor(), nil
}

// MarkRead moves the conversation's read cursor to the given message
// timestamp. With an empty timestamp it marks the most recent message
// instead, which makes it a two-call operation; a conversation with no
// messages at all is left untouched.
func (c *Client) MarkRead(ctx context.Context, channelID, ts string) error {
	if len(ts) == 0 {
		messages, _, err := c.History(ctx, channelID, HistoryRequest{Limit: 1})
		if err != nil {
			return err
		}
		if len(messages) == 0 {
			c.log.WithField("channel", channelID).Debugln("Conversation is empty, nothing to mark")
			return nil
		}
		ts = messages[0].Timestamp
	}

	params := Params{}
	params.set("channel", channelID)
	params.set("ts", ts)

	var resp Envelope
	return c.call(ctx, "conversations.mark", params, &resp)
}

// ResolveChannel maps a channel selector to a conversation ID. IDs
// (C…, G…, D…) pass through untouched; a "#name" selector is looked up
// by walking the conversation listing page by page.
func (c *Client) ResolveChannel(ctx context.Context, selector string) (string, error) {
	if len(selector) == 0 {
		return "", fmt.Errorf("channel is required")
	}

	if !strings.HasPrefix(selector, "#") {
		return selector, nil
	}

	name := strings.TrimPrefix(selector, "#")
	cursor := ""

	for {
		channels, next, err := c.ListConversations(ctx, ListConversationsRequest{
			Types:           []string{"public_channel", "private_channel"},
			ExcludeArchived: true,
			Limit:           resolvePageSize,
			Cursor:          cursor,
		})
		if err != nil {
			return "", err
		}

		for _, channel := range channels {
			if channel.Name == name {
				c.log.WithFields(logrus.Fields{
					"channel": selector,
					"id":      channel.ID,
				}).Debugln("Resolved channel name")
				return channel.ID, nil
			}
		}

		if len(next) == 0 {
			return "", fmt.Errorf("channel not found: %s", selector)
		}
		cursor = next
	}
}
