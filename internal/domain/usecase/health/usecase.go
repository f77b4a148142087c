package health

import (
	"context"

	"go-weather/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
}

// CachePinger is implemented by pkg/redis.Client
type CachePinger interface {
	Ping(ctx context.Context) error
}
