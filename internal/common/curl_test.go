package common

import (
	"strings"
	"testing"
)

func TestParseCurlCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    CapturedSession
		wantErr string
	}{
		{
			name: "cookie header and data-raw form token",
			command: `curl 'https://myteam.slack.com/api/conversations.list' ` +
				`-H 'Cookie: b=abc; d=xoxd-secret%2Fvalue; x=1' ` +
				`--data-raw 'token=xoxc-1234-abcd&limit=100'`,
			want: CapturedSession{
				BaseURL:   "https://myteam.slack.com",
				Cookie:    "xoxd-secret/value",
				FormToken: "xoxc-1234-abcd",
			},
		},
		{
			name: "cookie flag and form flag",
			command: `curl -b 'd=xoxd-plain' -F 'token=xoxc-99-zz' ` +
				`'https://corp.slack.com/api/chat.postMessage'`,
			want: CapturedSession{
				BaseURL:   "https://corp.slack.com",
				Cookie:    "xoxd-plain",
				FormToken: "xoxc-99-zz",
			},
		},
		{
			name: "bare switches are skipped without eating the URL",
			command: `curl --compressed -s 'https://myteam.slack.com/api/users.list' ` +
				`-H 'Cookie: d=xoxd-1' --data 'token=xoxc-1'`,
			want: CapturedSession{
				BaseURL:   "https://myteam.slack.com",
				Cookie:    "xoxd-1",
				FormToken: "xoxc-1",
			},
		},
		{
			name:    "not a curl command",
			command: `wget https://myteam.slack.com/`,
			wantErr: "not a curl command",
		},
		{
			name:    "missing session cookie",
			command: `curl 'https://myteam.slack.com/api/x' --data 'token=xoxc-1'`,
			wantErr: "no 'd' session cookie",
		},
		{
			name:    "missing form token",
			command: `curl 'https://myteam.slack.com/api/x' -H 'Cookie: d=xoxd-1'`,
			wantErr: "no xoxc form token",
		},
		{
			name:    "missing request URL",
			command: `curl -H 'Cookie: d=xoxd-1' --data 'token=xoxc-1'`,
			wantErr: "no request URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCurlCommand(tt.command)

			if len(tt.wantErr) > 0 {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, *got)
			}
		})
	}
}

func TestCookieFromPairs(t *testing.T) {
	tests := []struct {
		name  string
		pairs string
		want  string
		found bool
	}{
		{"single pair", "d=xoxd-1", "xoxd-1", true},
		{"among other cookies", "a=1; d=xoxd-2; b=3", "xoxd-2", true},
		{"percent encoded", "d=xoxd-a%2Bb%2Fc", "xoxd-a+b/c", true},
		{"no d cookie", "a=1; b=2", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := cookieFromPairs(tt.pairs)
			if found != tt.found || got != tt.want {
				t.Fatalf("expected (%q, %v), got (%q, %v)", tt.want, tt.found, got, found)
			}
		})
	}
}
