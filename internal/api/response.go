package api

import (
	"github.com/slack-go/slack"
)

// Envelope is the success/error header every Web API response carries.
// Operation response types embed it; the transports check it before any
// operation-specific field is read.
type Envelope struct {
	slack.SlackResponse
}

func (e *Envelope) apiOK() bool      { return e.Ok }
func (e *Envelope) apiError() string { return e.Error }

// nextCursor returns the pagination continuation token, empty when the
// listing is exhausted.
func (e *Envelope) nextCursor() string {
	return e.ResponseMetadata.Cursor
}

// response is implemented by every decoded API response via Envelope.
type response interface {
	apiOK() bool
	apiError() string
}
