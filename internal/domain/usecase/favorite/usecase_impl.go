package favorite

import (
	"fmt"
	"strings"

	"go-weather/internal/domain/gateway/file"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

type favoriteUseCase struct {
	favoriteGateway file.FavoriteGateway
}

func NewFavoriteUseCase(favoriteGateway file.FavoriteGateway) UseCase {
	return &favoriteUseCase{favoriteGateway: favoriteGateway}
}

func (uc *favoriteUseCase) AddFavorite(city string) (bool, error) {
	city = strings.TrimSpace(city)

	added, err := uc.favoriteGateway.Add(city)
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	if added {
		log.Info(msg.GetMessage("favorite.added", city))
	} else {
		log.Debug(msg.GetMessage("favorite.already-exists", city))
	}
	return added, nil
}

func (uc *favoriteUseCase) RemoveFavorite(city string) error {
	city = strings.TrimSpace(city)

	if err := uc.favoriteGateway.Remove(city); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	log.Info(msg.GetMessage("favorite.removed", city))
	return nil
}

func (uc *favoriteUseCase) ListFavorites() []string {
	return uc.favoriteGateway.List()
}

func (uc *favoriteUseCase) TopFavorite() (string, bool) {
	return uc.favoriteGateway.Top()
}
