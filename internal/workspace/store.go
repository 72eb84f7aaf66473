package workspace

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const storeVersion = "1.0"

const (
	authModeToken   = "token"
	authModeSession = "session"
)

// record is the on-disk shape of one workspace. Only the fields of the
// active auth mode are ever written; omitempty keeps the other
// variant's fields out of the file entirely.
type record struct {
	Auth      string `yaml:"auth"`
	Token     string `yaml:"token,omitempty"`
	Kind      string `yaml:"kind,omitempty"`
	URL       string `yaml:"url,omitempty"`
	Cookie    string `yaml:"cookie,omitempty"`
	FormToken string `yaml:"form_token,omitempty"`
}

type storeFile struct {
	Version    string            `yaml:"version"`
	Timestamp  time.Time         `yaml:"timestamp"`
	Default    string            `yaml:"default,omitempty"`
	Workspaces map[string]record `yaml:"workspaces"`
}

// Store holds the registered workspaces, backed by a yaml file under
// the user's config directory. All mutating operations commit
// immediately.
type Store struct {
	lock sync.Mutex
	path string
	data storeFile
}

// NewStore returns a store backed by the default location,
// ~/.config/slackctl/workspaces.yaml.
func NewStore() (*Store, error) {
	usr, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return NewStoreAt(filepath.Join(usr.HomeDir, ".config", "slackctl", "workspaces.yaml")), nil
}

// NewStoreAt returns a store backed by an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{
		path: path,
		data: storeFile{
			Version:    storeVersion,
			Workspaces: make(map[string]record),
		},
	}
}

// Load reads the backing file. A missing or empty file leaves the store
// empty; a corrupt file is reported rather than silently reset, since
// it holds credentials the user pasted by hand.
func (s *Store) Load() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read workspace store: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	var data storeFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse workspace store %s: %w", s.path, err)
	}

	if data.Workspaces == nil {
		data.Workspaces = make(map[string]record)
	}
	s.data = data

	return nil
}

// Commit writes the store back to disk, owner read/write only.
func (s *Store) Commit() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.commitLocked()
}

func (s *Store) commitLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create workspace store directory: %w", err)
	}

	s.data.Version = storeVersion
	s.data.Timestamp = time.Now().UTC()

	raw, err := yaml.Marshal(&s.data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write workspace store: %w", err)
	}

	return nil
}

// AddToken registers or replaces a token-mode workspace.
func (s *Store) AddToken(creds *TokenCredentials) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	logrus.WithFields(logrus.Fields{
		"workspace": creds.Team,
		"kind":      creds.Kind,
	}).Debugln("Storing token workspace")

	s.data.Workspaces[creds.Team] = record{
		Auth:  authModeToken,
		Token: creds.Token,
		Kind:  string(creds.Kind),
	}
	s.adoptDefaultLocked(creds.Team)

	return s.commitLocked()
}

// AddSession registers or replaces a session-mode workspace.
func (s *Store) AddSession(creds *SessionCredentials) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	logrus.WithFields(logrus.Fields{
		"workspace": creds.Team,
		"url":       creds.BaseURL,
	}).Debugln("Storing session workspace")

	s.data.Workspaces[creds.Team] = record{
		Auth:      authModeSession,
		URL:       creds.BaseURL,
		Cookie:    creds.Cookie,
		FormToken: creds.FormToken,
	}
	s.adoptDefaultLocked(creds.Team)

	return s.commitLocked()
}

// Remove deletes a workspace. Removing the default clears the default.
func (s *Store) Remove(name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.data.Workspaces[name]; !ok {
		return fmt.Errorf("unknown workspace: %s", name)
	}

	delete(s.data.Workspaces, name)
	if s.data.Default == name {
		s.data.Default = ""
	}

	return s.commitLocked()
}

// SetDefault marks a registered workspace as the one used when no
// --workspace selector is given.
func (s *Store) SetDefault(name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.data.Workspaces[name]; !ok {
		return fmt.Errorf("unknown workspace: %s", name)
	}

	s.data.Default = name

	return s.commitLocked()
}

// Default returns the default workspace name, empty when none is set.
func (s *Store) Default() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.data.Default
}

// Names returns the registered workspace names, sorted.
func (s *Store) Names() []string {
	s.lock.Lock()
	defer s.lock.Unlock()

	names := make([]string, 0, len(s.data.Workspaces))
	for name := range s.data.Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// AuthMode returns "token" or "session" for a registered workspace.
func (s *Store) AuthMode(name string) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	rec, ok := s.data.Workspaces[name]
	if !ok {
		return "", fmt.Errorf("unknown workspace: %s", name)
	}

	return rec.Auth, nil
}

// Resolve returns the bound credentials for a workspace selector. An
// empty selector resolves to the default workspace.
func (s *Store) Resolve(selector string) (Credentials, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	name := selector
	if len(name) == 0 {
		name = s.data.Default
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("no workspace selected and no default set, run 'slackctl auth' first")
	}

	rec, ok := s.data.Workspaces[name]
	if !ok {
		return nil, fmt.Errorf("unknown workspace: %s", name)
	}

	switch rec.Auth {
	case authModeToken:
		return &TokenCredentials{
			Team:  name,
			Token: rec.Token,
			Kind:  TokenKind(rec.Kind),
		}, nil
	case authModeSession:
		return &SessionCredentials{
			Team:      name,
			BaseURL:   rec.URL,
			Cookie:    rec.Cookie,
			FormToken: rec.FormToken,
		}, nil
	default:
		return nil, fmt.Errorf("workspace %s has unknown auth mode %q", name, rec.Auth)
	}
}

// adoptDefaultLocked makes the first registered workspace the default.
func (s *Store) adoptDefaultLocked(name string) {
	if len(s.data.Default) == 0 {
		s.data.Default = name
	}
}
