package redis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, NewRedisConfig().Validate())
	require.Error(t, NewRedisConfig().WithHost("").Validate())
	require.Error(t, NewRedisConfig().WithPort(0).Validate())
	require.Error(t, NewRedisConfig().WithDatabase(16).Validate())
}

func TestConfigAddr(t *testing.T) {
	require.Equal(t, "cache:6380", NewRedisConfig().WithHost("cache").WithPort(6380).Addr())
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(70000))
	require.Error(t, err)
}

func TestCacheKeyIsPrefixedWithCacheName(t *testing.T) {
	require.Equal(t, "current-weather::oslo", NewCache(nil, "current-weather", 0).buildCacheKey("oslo"))
	require.Equal(t, "oslo", NewCache(nil, "", 0).buildCacheKey("oslo"))
}
