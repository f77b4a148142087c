package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-weather/internal/domain/usecase/favorite"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// lookupTimeout bounds a single favorite lookup during a refresh run
const lookupTimeout = 30 * time.Second

// FavoriteScheduler periodically looks up and logs the current weather of every favorite
type FavoriteScheduler struct {
	cron            *cron.Cron
	cronExpression  string
	weatherUseCase  weather.UseCase
	favoriteUseCase favorite.UseCase
}

// NewFavoriteScheduler creates a new favorites refresh scheduler
func NewFavoriteScheduler(weatherUseCase weather.UseCase, favoriteUseCase favorite.UseCase, cronExpression string) *FavoriteScheduler {
	return &FavoriteScheduler{
		cron:            cron.New(),
		cronExpression:  cronExpression,
		weatherUseCase:  weatherUseCase,
		favoriteUseCase: favoriteUseCase,
	}
}

// InitFavoriteScheduleTasks registers the refresh job and starts the cron
func (s *FavoriteScheduler) InitFavoriteScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		return err
	}

	s.cron.Start()
	log.Infof("Favorites refresh scheduler started with cron expression: %s", s.cronExpression)
	return nil
}

// ExecuteScheduledTask refreshes every favorite once
func (s *FavoriteScheduler) ExecuteScheduledTask() {
	s.refresh(context.Background())
}

// refresh returns the number of favorites looked up
func (s *FavoriteScheduler) refresh(ctx context.Context) int {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("schedule.favorites-refresh.start", requestID), zap.String("request_id", requestID))

	cities := s.favoriteUseCase.ListFavorites()
	for _, city := range cities {
		lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
		report, err := s.weatherUseCase.GetWeather(lookupCtx, city)
		cancel()

		if err != nil {
			log.Error(msg.GetMessage("schedule.favorites-refresh.city-failed", requestID, city, err),
				zap.String("request_id", requestID),
				zap.String("city", city),
				zap.Error(err))
			continue
		}

		log.Info(msg.GetMessage("schedule.favorites-refresh.city", requestID, city, strings.ReplaceAll(strings.TrimSpace(report.Text), "\n", "; ")),
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.Bool("found", report.Found))
	}

	log.Info(msg.GetMessage("schedule.favorites-refresh.end", requestID, len(cities)), zap.String("request_id", requestID))
	return len(cities)
}

// Stop gracefully stops the scheduler
func (s *FavoriteScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
