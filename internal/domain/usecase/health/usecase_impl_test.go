package health

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go-weather/internal/domain/gateway/file"
	"go-weather/internal/domain/model"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func newFavorites(t *testing.T, path string) file.FavoriteGateway {
	t.Helper()
	gateway, err := file.NewJSONFavoriteGateway(path)
	require.NoError(t, err)
	return gateway
}

func TestCheckHealthWithoutCache(t *testing.T) {
	favorites := newFavorites(t, filepath.Join(t.TempDir(), "favorites.json"))
	_, err := favorites.Add("Oslo")
	require.NoError(t, err)

	response := NewHealthUseCase(favorites, nil).CheckHealth(context.Background())

	require.Equal(t, model.StatusUp, response.Status)
	require.Equal(t, model.StatusUp, response.Favorites.Status)
	require.Equal(t, "1", response.Favorites.Details["count"])
	require.Equal(t, model.StatusDisabled, response.Cache.Status)
}

func TestCheckHealthCacheDown(t *testing.T) {
	favorites := newFavorites(t, filepath.Join(t.TempDir(), "favorites.json"))

	response := NewHealthUseCase(favorites, stubPinger{err: errors.New("dial tcp: refused")}).CheckHealth(context.Background())

	require.Equal(t, model.StatusDown, response.Status)
	require.Equal(t, model.StatusDown, response.Cache.Status)
	require.Equal(t, "dial tcp: refused", response.Cache.Details["error"])
}

func TestCheckHealthFavoritesDirectoryMissing(t *testing.T) {
	favorites := newFavorites(t, filepath.Join(t.TempDir(), "gone", "favorites.json"))

	response := NewHealthUseCase(favorites, stubPinger{}).CheckHealth(context.Background())

	require.Equal(t, model.StatusDown, response.Status)
	require.Equal(t, model.StatusDown, response.Favorites.Status)
	require.Equal(t, model.StatusUp, response.Cache.Status)
}
