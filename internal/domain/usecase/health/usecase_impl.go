package health

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"go-weather/internal/domain/gateway/file"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	favoriteGateway file.FavoriteGateway
	cache           CachePinger
}

// NewHealthUseCase builds the health check. cache may be nil when caching is disabled.
func NewHealthUseCase(favoriteGateway file.FavoriteGateway, cache CachePinger) UseCase {
	return &healthUseCase{
		favoriteGateway: favoriteGateway,
		cache:           cache,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	favoritesHealth := useCase.favoritesHealth()
	cacheHealth := useCase.cacheHealth(ctx)

	overallStatus := model.StatusUp
	if favoritesHealth.Status == model.StatusDown || cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Favorites: favoritesHealth,
		Cache:     cacheHealth,
	}
}

func (useCase *healthUseCase) favoritesHealth() model.ComponentHealthStatus {
	location := useCase.favoriteGateway.Location()
	details := map[string]string{
		"file":  location,
		"count": strconv.Itoa(len(useCase.favoriteGateway.List())),
	}

	info, err := os.Stat(filepath.Dir(location))
	if err != nil {
		details["error"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	if !info.IsDir() {
		details["error"] = "parent path is not a directory"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

func (useCase *healthUseCase) cacheHealth(ctx context.Context) model.ComponentHealthStatus {
	if useCase.cache == nil {
		return model.ComponentHealthStatus{Status: model.StatusDisabled, Details: map[string]string{}}
	}

	if err := useCase.cache.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"error": err.Error()},
		}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: map[string]string{}}
}
