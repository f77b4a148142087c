package file

import "errors"

var (
	// ErrEmptyCity is returned when a blank city name is stored.
	ErrEmptyCity = errors.New("city name is required")
	// ErrFavoriteNotFound is returned when removing a city that is not a favorite.
	ErrFavoriteNotFound = errors.New("city is not a favorite")
)

// FavoriteGateway is the ordered list of favorite cities and its persisted copy
type FavoriteGateway interface {
	// Load replaces the in-memory list with the persisted one. A missing file means an empty list.
	Load() error

	// Save writes the whole list, overwriting the persisted copy.
	Save() error

	// Add appends city unless it is already present, then saves.
	// It reports whether the list changed.
	Add(city string) (bool, error)

	// Remove drops city from the list, then saves.
	Remove(city string) error

	// List returns the cities in insertion order.
	List() []string

	// Top returns the first favorite, false when there is none.
	Top() (string, bool)

	// Location describes where the list is persisted.
	Location() string
}
