package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/slackctl/slackctl/internal/common"
	"github.com/slackctl/slackctl/internal/workspace"
)

// webOrigin is what the browser sends; the internal endpoints reject
// requests carrying any other origin.
const webOrigin = "https://app.slack.com"

// sessionTransport replays a captured browser session against the
// workspace's own /api/<method> endpoints. The session form token rides
// in the form body next to the call parameters; the "d" cookie
// authenticates the request.
type sessionTransport struct {
	baseURL   string
	cookie    string
	formToken string
	rest      *resty.Client
}

func newSessionTransport(creds *workspace.SessionCredentials) *sessionTransport {
	return &sessionTransport{
		baseURL:   creds.BaseURL,
		cookie:    creds.Cookie,
		formToken: creds.FormToken,
		rest:      resty.New().SetHeader("User-Agent", common.GetUserAgent()),
	}
}

func (t *sessionTransport) callAPI(ctx context.Context, method string, params Params, resp response) error {
	endpoint := t.baseURL + "/api/" + method

	form := params.formValues()
	form.Set("token", t.formToken)

	res, err := t.rest.R().
		SetContext(ctx).
		SetHeader("Cookie", fmt.Sprintf("d=%s", url.QueryEscape(t.cookie))).
		SetHeader("Origin", webOrigin).
		SetFormDataFromValues(form).
		Post(endpoint)

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": method,
		}).WithError(err).Debugln("Session API request failed")
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
