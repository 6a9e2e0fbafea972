package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nativoseo/internal/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr, strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), err
}

func TestProtectedCommandsRequireLogin(t *testing.T) {
	state := filepath.Join(t.TempDir(), "state.json")
	// nothing listens on port 1: a request would fail with a connection error
	api := "http://127.0.0.1:1"

	for _, args := range [][]string{
		{"dashboard"},
		{"accounts"},
		{"locations", "acc-1"},
		{"reviews", "acc-1", "loc-1"},
		{"posts"},
		{"posts", "create", "loc-1", "--summary", "Hola"},
		{"connect-google"},
	} {
		out, err := run(t, "", append(args, "--state", state, "--api", api)...)

		assert.ErrorIs(t, err, dashboard.ErrLoginRequired, args)
		assert.Contains(t, out, dashboard.LoginPath, args)
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	out, err := run(t, "", "logout", "--state", filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	assert.Contains(t, out, "Sesión cerrada")
}

func TestInvalidAPIURL(t *testing.T) {
	_, err := run(t, "", "accounts", "--state", filepath.Join(t.TempDir(), "state.json"), "--api", "localhost")

	assert.Error(t, err)
}

func TestMutuallyExclusiveLocationFlags(t *testing.T) {
	_, err := run(t, "", "locations", "acc-1", "--activate", "a", "--deactivate", "b",
		"--state", filepath.Join(t.TempDir(), "state.json"))

	assert.Error(t, err)
}
