// Package localstore persists the dashboard session and the mirrored active
// locations in a JSON state file.
package localstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"nativoseo/internal/errors"
	"nativoseo/pkg/client"
)

const (
	appDir    = "nativoseo"
	stateFile = "state.json"
)

// State is the content of the state file.
type State struct {
	Token           string       `json:"token,omitempty"`
	User            *client.User `json:"user,omitempty"`
	ActiveLocations []string     `json:"active_locations,omitempty"`
}

// Store guards the state file. It implements client.TokenSource.
type Store struct {
	path   string
	logger *slog.Logger

	mu    sync.Mutex
	state State
}

// DefaultPath is $XDG_CONFIG_HOME/nativoseo/state.json, or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate config dir")
	}

	return filepath.Join(dir, appDir, stateFile), nil
}

// Open loads the state at path. A missing file is an empty state; a corrupt one is
// discarded.
func Open(path string, logger *slog.Logger) (*Store, error) {
	s := &Store{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		logger.Warn("Discarding corrupt state file", slog.String("path", path), slog.Any("error", err))
		s.state = State{}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "remove %s", path)
		}
	}

	return s, nil
}

// Token returns the session token, "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Token
}

// User returns the cached profile or nil.
func (s *Store) User() *client.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return nil
	}
	u := *s.state.User

	return &u
}

// SetToken stores a new session token and forgets the previous profile.
func (s *Store) SetToken(token string) error {
	return s.update(func(st *State) {
		st.Token = token
		st.User = nil
	})
}

// SetUser caches the profile of the current session.
func (s *Store) SetUser(user *client.User) error {
	return s.update(func(st *State) {
		if user == nil {
			st.User = nil

			return
		}
		u := *user
		st.User = &u
	})
}

// ClearSession forgets token, profile and the active location mirror, which
// belongs to the signed in user.
func (s *Store) ClearSession() error {
	return s.update(func(st *State) {
		st.Token = ""
		st.User = nil
		st.ActiveLocations = nil
	})
}

// ActiveLocations returns a copy of the mirrored active location ids.
func (s *Store) ActiveLocations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.state.ActiveLocations)
}

// SetActiveLocations replaces the mirror.
func (s *Store) SetActiveLocations(ids []string) error {
	return s.update(func(st *State) {
		st.ActiveLocations = normalizeIDs(ids)
	})
}

func (s *Store) update(fn func(*State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.ActiveLocations = slices.Clone(s.state.ActiveLocations)
	fn(&next)

	if err := s.write(next); err != nil {
		return err
	}
	s.state = next

	return nil
}

// write replaces the file atomically.
func (s *Store) write(st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode state")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create state dir")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+stateFile+"-*")
	if err != nil {
		return errors.Wrap(err, "create temp state")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return errors.Wrap(err, "write temp state")
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()

		return errors.Wrap(err, "chmod temp state")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp state")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace state")
}

func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}
