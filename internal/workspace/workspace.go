package workspace

import (
	"fmt"
	"net/url"
	"strings"
)

// TokenKind distinguishes bot tokens from user tokens. The API accepts
// both; some methods (search, conversations.mark) only work with one of
// them, so the kind is kept alongside the token for diagnostics.
type TokenKind string

const (
	TokenKindBot  TokenKind = "bot"
	TokenKindUser TokenKind = "user"
)

// Credentials binds a workspace to exactly one authentication mode.
// The two implementations are TokenCredentials and SessionCredentials;
// the closed marker method keeps the set closed so a client can pick
// its transport by variant once, at construction.
type Credentials interface {
	// TeamName returns the workspace name the credentials were stored under.
	TeamName() string

	isCredentials()
}

// TokenCredentials authenticates with a bot or user OAuth token against
// the public Web API.
type TokenCredentials struct {
	Team  string
	Token string
	Kind  TokenKind
}

func (c *TokenCredentials) TeamName() string { return c.Team }
func (c *TokenCredentials) isCredentials()   {}

// SessionCredentials authenticates with a captured browser session: the
// workspace's own domain, the "d" session cookie and the xoxc form
// token the web client sends with every request.
type SessionCredentials struct {
	Team      string
	BaseURL   string
	Cookie    string
	FormToken string
}

func (c *SessionCredentials) TeamName() string { return c.Team }
func (c *SessionCredentials) isCredentials()   {}

// NewTokenCredentials validates and builds a token-mode workspace
// binding. The kind is inferred from the token prefix when not given.
func NewTokenCredentials(team, token string, kind TokenKind) (*TokenCredentials, error) {
	if len(team) == 0 {
		return nil, fmt.Errorf("workspace name is required")
	}
	if len(token) == 0 {
		return nil, fmt.Errorf("token is required")
	}

	if len(kind) == 0 {
		kind = inferTokenKind(token)
	}

	switch kind {
	case TokenKindBot, TokenKindUser:
	default:
		return nil, fmt.Errorf("unknown token kind: %s", kind)
	}

	return &TokenCredentials{Team: team, Token: token, Kind: kind}, nil
}

// NewSessionCredentials validates and builds a session-mode workspace
// binding. The base URL must be absolute; a bare team domain like
// "myteam.slack.com" is accepted and normalized to https.
func NewSessionCredentials(team, baseURL, cookie, formToken string) (*SessionCredentials, error) {
	if len(team) == 0 {
		return nil, fmt.Errorf("workspace name is required")
	}
	if len(cookie) == 0 {
		return nil, fmt.Errorf("session cookie is required")
	}
	if len(formToken) == 0 {
		return nil, fmt.Errorf("session form token is required")
	}

	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	return &SessionCredentials{
		Team:      team,
		BaseURL:   normalized,
		Cookie:    cookie,
		FormToken: formToken,
	}, nil
}

func inferTokenKind(token string) TokenKind {
	if strings.HasPrefix(token, "xoxp-") {
		return TokenKindUser
	}
	return TokenKindBot
}

func normalizeBaseURL(baseURL string) (string, error) {
	if len(baseURL) == 0 {
		return "", fmt.Errorf("workspace URL is required")
	}

	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid workspace URL %q: %w", baseURL, err)
	}
	if len(parsed.Host) == 0 {
		return "", fmt.Errorf("invalid workspace URL %q: missing host", baseURL)
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	parsed.RawQuery = ""
	parsed.Fragment = ""

	return parsed.String(), nil
}
