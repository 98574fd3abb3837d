package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"imuhira/internal/config"
	"imuhira/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache — кэш опубликованных материалов. Значения хранятся как JSON.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// New выбирает Redis, если задан REDIS_ADDR и сервер отвечает, иначе локальный LRU.
func New(ctx context.Context, cfg *config.Config) Cache {
	size := cfg.CacheSizeInt()
	if cfg.RedisAddr == "" {
		logger.Log.Info("Кэш: локальный LRU", zap.Int("size", size))
		return NewLRU(size)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDBInt(),
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Log.Warn("Кэш: Redis недоступен, используется LRU",
			zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = client.Close()
		return NewLRU(size)
	}
	logger.Log.Info("Кэш: Redis", zap.String("addr", cfg.RedisAddr))
	return NewRedis(client)
}

// GetJSON читает и декодирует значение. found=false — ключа нет или он просрочен.
func GetJSON(ctx context.Context, c Cache, key string, dest any) (bool, error) {
	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return true, nil
}

func SetJSON(ctx context.Context, c Cache, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	return c.Set(ctx, key, raw, ttl)
}
