package localstore

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"nativoseo/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nativoseo", "state.json")

	s, err := Open(path, newDiscardLogger())
	require.NoError(t, err)
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())

	require.NoError(t, s.SetToken("jwt"))
	require.NoError(t, s.SetUser(&client.User{Username: "ana"}))
	require.NoError(t, s.SetActiveLocations([]string{"9", "", "3", "9"}))

	reopened, err := Open(path, newDiscardLogger())
	require.NoError(t, err)
	assert.Equal(t, "jwt", reopened.Token())
	assert.Equal(t, "ana", reopened.User().Username)
	assert.Equal(t, []string{"3", "9"}, reopened.ActiveLocations())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SetTokenForgetsProfile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.json"), newDiscardLogger())
	require.NoError(t, err)

	require.NoError(t, s.SetToken("old"))
	require.NoError(t, s.SetUser(&client.User{Username: "ana"}))
	require.NoError(t, s.SetToken("new"))

	assert.Equal(t, "new", s.Token())
	assert.Nil(t, s.User())
}

func TestStore_ClearSessionDropsMirror(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Open(path, newDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, s.SetToken("jwt"))
	require.NoError(t, s.SetActiveLocations([]string{"9"}))

	require.NoError(t, s.ClearSession())

	assert.Empty(t, s.Token())
	assert.Empty(t, s.ActiveLocations())

	reopened, err := Open(path, newDiscardLogger())
	require.NoError(t, err)
	assert.Empty(t, reopened.ActiveLocations())
}

func TestStore_CorruptFileIsDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token": "abc", "active_locations": [`), 0o600))

	s, err := Open(path, newDiscardLogger())
	require.NoError(t, err)

	assert.Empty(t, s.Token())
	assert.Empty(t, s.ActiveLocations())
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_ActiveLocationsIsACopy(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.json"), newDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, s.SetActiveLocations([]string{"1", "2"}))

	ids := s.ActiveLocations()
	ids[0] = "changed"

	assert.Equal(t, []string{"1", "2"}, s.ActiveLocations())
}
