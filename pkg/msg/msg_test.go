package msg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	require.NoError(t, Load(strings.NewReader(`
favorite:
  added: "{0} added to favorites"
weather:
  request-failed: "Request {0} for city {1} failed: {2}"
`)))

	require.Equal(t, "Paris added to favorites", GetMessage("favorite.added", "Paris"))
	require.Equal(t, "Request forecast for city Oslo failed: timeout",
		GetMessage("weather.request-failed", "forecast", "Oslo", errors.New("timeout")))
	require.Equal(t, "Message not found: favorite.unknown", GetMessage("favorite.unknown"))
}

func TestGetMessage_FormatsArguments(t *testing.T) {
	require.NoError(t, Load(strings.NewReader(`test: "{0} {1} {2}"`)))

	require.Equal(t, "3 0.5 true", GetMessage("test", 3, 0.5, true))
	require.Equal(t, `["a","b"]  {2}`, GetMessage("test", []string{"a", "b"}, nil))
}

func TestInit_OverridesKeys(t *testing.T) {
	require.NoError(t, Load(strings.NewReader("app:\n  start: embedded\n  stopped: embedded stop\n")))

	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  start: overridden\n"), 0o644))
	require.NoError(t, Init(path))

	require.Equal(t, "overridden", GetMessage("app.start"))
	require.Equal(t, "embedded stop", GetMessage("app.stopped"))
}
