package services

import (
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combo-tracker/internal/chains"
	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
	"github.com/KirkDiggler/combo-tracker/internal/events"
	"github.com/KirkDiggler/combo-tracker/internal/repositories/progress"
	"github.com/KirkDiggler/combo-tracker/internal/services/tracker"
	"github.com/KirkDiggler/combo-tracker/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	TrackerService     tracker.Service
	ProgressRepository progress.Repository
	EventBus           *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Definitions   []*chains.Definition
	Oracle        combo.Oracle
	Player        combo.Player
	Clock         combo.Clock
	Settings      combo.Settings
	RedisClient   redis.UniversalClient // Optional, progress stays in memory if nil
	UUIDGenerator uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("provider config cannot be nil")
	}

	var repo progress.Repository
	if cfg.RedisClient != nil {
		redisRepo, err := progress.NewRedis(&progress.RedisRepoConfig{
			Client:       cfg.RedisClient,
			TimeProvider: cfg.Clock,
		})
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to create progress repository")
		}
		repo = redisRepo
	} else {
		repo = progress.NewInMemory(cfg.Clock)
	}

	bus := events.NewBus()

	trackerService, err := tracker.NewService(&tracker.ServiceConfig{
		Definitions:   cfg.Definitions,
		Oracle:        cfg.Oracle,
		Player:        cfg.Player,
		Clock:         cfg.Clock,
		Settings:      cfg.Settings,
		Repository:    repo,
		EventBus:      bus,
		UUIDGenerator: cfg.UUIDGenerator,
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create tracker service")
	}

	return &Provider{
		TrackerService:     trackerService,
		ProgressRepository: repo,
		EventBus:           bus,
	}, nil
}
