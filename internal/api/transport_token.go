package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/slackctl/slackctl/internal/common"
	"github.com/slackctl/slackctl/internal/workspace"
)

const defaultAPIBaseURL = "https://slack.com/api"

// tokenTransport speaks the public Web API with a bearer token. It
// hands the method name and parameter mapping verbatim to the HTTP
// client; response bodies are decoded as-is and left for the facade to
// interpret beyond the envelope check.
type tokenTransport struct {
	token   string
	baseURL string
	rest    *resty.Client
}

func newTokenTransport(creds *workspace.TokenCredentials) *tokenTransport {
	return &tokenTransport{
		token:   creds.Token,
		baseURL: defaultAPIBaseURL,
		rest:    resty.New().SetHeader("User-Agent", common.GetUserAgent()),
	}
}

func (t *tokenTransport) callAPI(ctx context.Context, method string, params Params, resp response) error {
	endpoint := t.baseURL + "/" + method

	res, err := t.rest.R().
		SetContext(ctx).
		SetAuthToken(t.token).
		SetFormDataFromValues(params.formValues()).
		Post(endpoint)

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": method,
		}).WithError(err).Debugln("API request failed")
		return wrapAPIError(method, err)
	}

	if res.IsError() {
		return statusError(method, res.StatusCode())
	}

	if err := json.Unmarshal(res.Body(), resp); err != nil {
		return wrapAPIError(method, err)
	}

	if !resp.apiOK() {
		return remoteError(method, resp.apiError())
	}

	return nil
}
