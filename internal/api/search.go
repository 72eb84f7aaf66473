package api

import (
	"context"

	"github.com/slack-go/slack"
)

// SearchRequest carries the optional knobs of search.messages. Sort is
// "score" or "timestamp"; SortDir is "asc" or "desc".
type SearchRequest struct {
	Count   int
	Page    int
	Sort    string
	SortDir string
}

type searchResponse struct {
	Envelope
	Query    string               `json:"query"`
	Messages slack.SearchMessages `json:"messages"`
}

// SearchMessages runs a workspace message search. Search requires a
// user-scoped credential; bot tokens are rejected by the server with
// not_allowed_token_type.
func (c *Client) SearchMessages(ctx context.Context, query string, req SearchRequest) (*slack.SearchMessages, error) {
	params := Params{}
	params.set("query", query)
	params.setOptionalInt("count", req.Count)
	params.setOptionalInt("page", req.Page)
	params.setOptional("sort", req.Sort)
	params.setOptional("sort_dir", req.SortDir)

	var resp searchResponse
	if err := c.call(ctx, "search.messages", params, &resp); err != nil {
		return nil, err
	}

	return &resp.Messages, nil
}
