package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T) (FavoriteGateway, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFavoritesFile)
	gateway, err := NewJSONFavoriteGateway(path)
	require.NoError(t, err)
	return gateway, path
}

func TestNewGatewayStartsEmptyWithoutFile(t *testing.T) {
	gateway, path := newGateway(t)

	require.Empty(t, gateway.List())
	require.Equal(t, path, gateway.Location())

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestAddIgnoresDuplicates(t *testing.T) {
	gateway, _ := newGateway(t)

	added, err := gateway.Add("Paris")
	require.NoError(t, err)
	require.True(t, added)

	added, err = gateway.Add("Paris")
	require.NoError(t, err)
	require.False(t, added)

	added, err = gateway.Add("  Paris ")
	require.NoError(t, err)
	require.False(t, added)

	require.Equal(t, []string{"Paris"}, gateway.List())
}

func TestAddRejectsEmptyCity(t *testing.T) {
	gateway, path := newGateway(t)

	_, err := gateway.Add("   ")
	require.ErrorIs(t, err, ErrEmptyCity)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestTop(t *testing.T) {
	gateway, _ := newGateway(t)

	city, ok := gateway.Top()
	require.False(t, ok)
	require.Empty(t, city)

	_, err := gateway.Add("Lima")
	require.NoError(t, err)
	_, err = gateway.Add("Quito")
	require.NoError(t, err)

	city, ok = gateway.Top()
	require.True(t, ok)
	require.Equal(t, "Lima", city)
}

func TestPersistAndReloadKeepsOrder(t *testing.T) {
	gateway, path := newGateway(t)
	for _, city := range []string{"Tokyo", "Berlin", "Nairobi"} {
		_, err := gateway.Add(city)
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `["Tokyo","Berlin","Nairobi"]`, string(data))

	reloaded, err := NewJSONFavoriteGateway(path)
	require.NoError(t, err)
	require.Equal(t, gateway.List(), reloaded.List())
}

func TestLoadReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Rome", "Oslo"]`), 0o644))

	gateway, err := NewJSONFavoriteGateway(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Rome", "Oslo"}, gateway.List())
}

func TestLoadAcceptsEmptyAndNullFile(t *testing.T) {
	for _, content := range []string{"", "null", " \n"} {
		path := filepath.Join(t.TempDir(), "favorites.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		gateway, err := NewJSONFavoriteGateway(path)
		require.NoError(t, err)
		require.NotNil(t, gateway.List())
		require.Empty(t, gateway.List())
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cities":1}`), 0o644))

	_, err := NewJSONFavoriteGateway(path)
	require.Error(t, err)
}

func TestRemove(t *testing.T) {
	gateway, path := newGateway(t)
	for _, city := range []string{"A", "B", "C"} {
		_, err := gateway.Add(city)
		require.NoError(t, err)
	}

	require.NoError(t, gateway.Remove("B"))
	require.Equal(t, []string{"A", "C"}, gateway.List())
	require.ErrorIs(t, gateway.Remove("B"), ErrFavoriteNotFound)

	reloaded, err := NewJSONFavoriteGateway(path)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, reloaded.List())
}

func TestListReturnsCopy(t *testing.T) {
	gateway, _ := newGateway(t)
	_, err := gateway.Add("Cairo")
	require.NoError(t, err)

	list := gateway.List()
	list[0] = "Changed"
	require.Equal(t, []string{"Cairo"}, gateway.List())
}

func TestAddKeepsMemoryUnchangedWhenSaveFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "favorites.json")
	gateway, err := NewJSONFavoriteGateway(path)
	require.NoError(t, err)

	_, err = gateway.Add("Lisbon")
	require.Error(t, err)
	require.Empty(t, gateway.List())
}
