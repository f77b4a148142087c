package resource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testProperties = `
app:
  name: ${GO_WEATHER_TEST_NAME:go-weather}
  plain: literal value
  openweather:
    timeout: ${GO_WEATHER_TEST_TIMEOUT:10s}
    api-key: ${GO_WEATHER_TEST_KEY:}
  cache:
    enabled: true
  redis:
    port: 6379
`

func TestLoad_ResolvesEnvDefaults(t *testing.T) {
	require.NoError(t, Load(strings.NewReader(testProperties)))

	require.Equal(t, "go-weather", GetString("app.name"))
	require.Equal(t, "literal value", GetString("app.plain"))
	require.Equal(t, 10*time.Second, GetDuration("app.openweather.timeout"))
	require.Equal(t, "", GetString("app.openweather.api-key"))
	require.True(t, GetBool("app.cache.enabled"))
	require.Equal(t, 6379, GetInt("app.redis.port"))
}

func TestLoad_PrefersEnvironment(t *testing.T) {
	t.Setenv("GO_WEATHER_TEST_NAME", "weather-test")
	t.Setenv("GO_WEATHER_TEST_TIMEOUT", "2s")

	require.NoError(t, Load(strings.NewReader(testProperties)))

	require.Equal(t, "weather-test", GetString("app.name"))
	require.Equal(t, 2*time.Second, GetDuration("app.openweather.timeout"))
}

func TestInit_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  openweather:\n    rate-limit:\n      rps: 0.5\n"), 0o644))

	require.NoError(t, Init(path))
	require.Equal(t, 0.5, GetFloat64("app.openweather.rate-limit.rps"))
}

func TestInit_MissingFile(t *testing.T) {
	require.Error(t, Init(filepath.Join(t.TempDir(), "missing.yml")))
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("GO_WEATHER_TEST_PORT", "9090")

	require.Equal(t, "9090", resolveEnvVariable("${GO_WEATHER_TEST_PORT:8080}"))
	require.Equal(t, "8080", resolveEnvVariable("${GO_WEATHER_TEST_UNSET:8080}"))
	require.Equal(t, "", resolveEnvVariable("${GO_WEATHER_TEST_UNSET}"))
	require.Equal(t, "*/30 * * * *", resolveEnvVariable("*/30 * * * *"))
}
