package common

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"
)

// CapturedSession is what a pasted "Copy as cURL" command yields: the
// workspace base URL, the "d" session cookie and the xoxc form token.
type CapturedSession struct {
	BaseURL   string
	Cookie    string
	FormToken string
}

var formTokenPattern = regexp.MustCompile(`xoxc-[A-Za-z0-9-]+`)

// curl flags that consume a following value. Anything else starting
// with a dash is treated as a bare switch.
var curlValueFlags = map[string]bool{
	"-H": true, "--header": true,
	"-b": true, "--cookie": true,
	"-d": true, "--data": true, "--data-raw": true, "--data-binary": true, "--data-urlencode": true,
	"-F": true, "--form": true,
	"-X": true, "--request": true,
	"-A": true, "--user-agent": true,
	"-e": true, "--referer": true,
	"-u": true, "--user": true,
	"-o": true, "--output": true,
}

// ParseCurlCommand extracts session credentials from a curl command
// copied out of the browser's network inspector. The request URL gives
// the workspace base URL; the Cookie header (or -b flag) gives the "d"
// cookie; the form token is found anywhere in the request data.
func ParseCurlCommand(command string) (*CapturedSession, error) {
	tokens, err := shellquote.Split(strings.TrimSpace(command))
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize curl command: %w", err)
	}

	if len(tokens) == 0 || tokens[0] != "curl" {
		return nil, fmt.Errorf("not a curl command")
	}

	var requestURL, cookie, formToken string
	var dataArgs []string

	for i := 1; i < len(tokens); i++ {
		token := tokens[i]

		if strings.HasPrefix(token, "-") {
			if !curlValueFlags[token] {
				continue
			}

			i++
			if i >= len(tokens) {
				break
			}
			value := tokens[i]

			switch token {
			case "-H", "--header":
				if d, ok := cookieFromHeader(value); ok {
					cookie = d
				}
			case "-b", "--cookie":
				if d, ok := cookieFromPairs(value); ok {
					cookie = d
				}
			case "-d", "--data", "--data-raw", "--data-binary", "--data-urlencode", "-F", "--form":
				dataArgs = append(dataArgs, value)
			}
			continue
		}

		if len(requestURL) == 0 && strings.HasPrefix(token, "http") {
			requestURL = token
		}
	}

	for _, data := range dataArgs {
		if match := formTokenPattern.FindString(data); len(match) > 0 {
			formToken = match
			break
		}
	}

	if len(requestURL) == 0 {
		return nil, fmt.Errorf("no request URL found in curl command")
	}
	if len(cookie) == 0 {
		return nil, fmt.Errorf("no 'd' session cookie found in curl command")
	}
	if len(formToken) == 0 {
		return nil, fmt.Errorf("no xoxc form token found in curl command")
	}

	parsed, err := url.Parse(requestURL)
	if err != nil || len(parsed.Host) == 0 {
		return nil, fmt.Errorf("invalid request URL in curl command: %s", requestURL)
	}

	return &CapturedSession{
		BaseURL:   fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host),
		Cookie:    cookie,
		FormToken: formToken,
	}, nil
}

// cookieFromHeader pulls the "d" cookie out of a "Cookie: …" header.
func cookieFromHeader(header string) (string, bool) {
	name, rest, found := strings.Cut(header, ":")
	if !found || !strings.EqualFold(strings.TrimSpace(name), "cookie") {
		return "", false
	}
	return cookieFromPairs(rest)
}

// cookieFromPairs pulls the "d" cookie out of "k=v; k2=v2" pairs. The
// browser stores the value percent-encoded; it is decoded here and
// re-encoded at request time.
func cookieFromPairs(pairs string) (string, bool) {
	for _, pair := range strings.Split(pairs, ";") {
		name, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || name != "d" {
			continue
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			return decoded, true
		}
		return value, true
	}
	return "", false
}
