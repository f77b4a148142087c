package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// DefaultFavoritesFile is the file name used when none is configured
const DefaultFavoritesFile = "favorite_cities.json"

// jsonFavoriteGateway keeps the favorites as a JSON array of strings on disk
type jsonFavoriteGateway struct {
	mu     sync.RWMutex
	path   string
	cities []string
}

// NewJSONFavoriteGateway creates the gateway and loads the existing file, if any
func NewJSONFavoriteGateway(path string) (FavoriteGateway, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultFavoritesFile
	}

	gateway := &jsonFavoriteGateway{path: path, cities: []string{}}
	if err := gateway.Load(); err != nil {
		return nil, err
	}
	return gateway, nil
}

func (g *jsonFavoriteGateway) Load() error {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		g.mu.Lock()
		g.cities = []string{}
		g.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read favorites file %s: %w", g.path, err)
	}

	cities := []string{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json.Unmarshal(data, &cities); err != nil {
			return fmt.Errorf("failed to parse favorites file %s: %w", g.path, err)
		}
	}
	if cities == nil {
		cities = []string{}
	}

	g.mu.Lock()
	g.cities = cities
	g.mu.Unlock()
	return nil
}

func (g *jsonFavoriteGateway) Save() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.writeLocked()
}

// writeLocked writes through a temp file in the same directory and renames it over the
// target, so readers never observe a partially written list.
func (g *jsonFavoriteGateway) writeLocked() error {
	data, err := json.Marshal(g.cities)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	dir := filepath.Dir(g.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(g.path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp favorites file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := os.Rename(tmpName, g.path); err != nil {
		return fmt.Errorf("failed to replace favorites file %s: %w", g.path, err)
	}
	return nil
}

func (g *jsonFavoriteGateway) Add(city string) (bool, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return false, ErrEmptyCity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if slices.Contains(g.cities, city) {
		return false, nil
	}

	previous := g.cities
	g.cities = append(slices.Clip(previous), city)
	if err := g.writeLocked(); err != nil {
		g.cities = previous
		return false, err
	}
	return true, nil
}

func (g *jsonFavoriteGateway) Remove(city string) error {
	city = strings.TrimSpace(city)

	g.mu.Lock()
	defer g.mu.Unlock()

	index := slices.Index(g.cities, city)
	if index < 0 {
		return ErrFavoriteNotFound
	}

	previous := g.cities
	g.cities = slices.Delete(slices.Clone(previous), index, index+1)
	if err := g.writeLocked(); err != nil {
		g.cities = previous
		return err
	}
	return nil
}

func (g *jsonFavoriteGateway) List() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.cities)
}

func (g *jsonFavoriteGateway) Top() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.cities) == 0 {
		return "", false
	}
	return g.cities[0], true
}

func (g *jsonFavoriteGateway) Location() string {
	return g.path
}
