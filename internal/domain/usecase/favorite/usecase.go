package favorite

type UseCase interface {
	// AddFavorite stores city unless it already is a favorite. It reports whether it was added.
	AddFavorite(city string) (bool, error)

	// RemoveFavorite drops city from the favorites
	RemoveFavorite(city string) error

	// ListFavorites returns the favorites in insertion order
	ListFavorites() []string

	// TopFavorite returns the first favorite, false when there is none
	TopFavorite() (string, bool)
}
