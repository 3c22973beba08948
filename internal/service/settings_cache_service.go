package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"practice-manager/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// Redis key holding the serialized settings row
	RedisSettingsKey = "practice:settings"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second

	defaultSettingsTTL = 10 * time.Minute
)

// =============================================================================
// Types
// =============================================================================

// SettingsCacheService keeps a copy of the single settings row in Redis.
//
// The database stays the source of truth: a cache failure is logged and
// reported to the caller, who falls back to the database.
type SettingsCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

// =============================================================================
// Constructor
// =============================================================================

func NewSettingsCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *SettingsCacheService {
	if ttl <= 0 {
		ttl = defaultSettingsTTL
	}
	return &SettingsCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Get returns the cached settings, or nil on a cache miss
func (s *SettingsCacheService) Get(ctx context.Context) (*entity.AppSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	data, err := s.redisClient.Get(ctx, RedisSettingsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		s.log.Warnf("Failed to read settings from Redis: %+v", err)
		return nil, fmt.Errorf("redis get settings: %w", err)
	}

	var settings entity.AppSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		// Corrupt entry: drop it so the next write repopulates
		s.log.Warnf("Failed to decode cached settings: %+v", err)
		_ = s.redisClient.Del(ctx, RedisSettingsKey).Err()
		return nil, nil
	}
	settings.ID = entity.SettingsRowID

	return &settings, nil
}

// Set stores settings with the configured TTL
func (s *SettingsCacheService) Set(ctx context.Context, settings *entity.AppSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := s.redisClient.Set(ctx, RedisSettingsKey, data, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write settings to Redis: %+v", err)
		return fmt.Errorf("redis set settings: %w", err)
	}

	s.log.Debugf("Cached settings for %v", s.ttl)
	return nil
}

// Invalidate removes the cached copy
func (s *SettingsCacheService) Invalidate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := s.redisClient.Del(ctx, RedisSettingsKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate cached settings: %+v", err)
		return fmt.Errorf("redis del settings: %w", err)
	}
	return nil
}
