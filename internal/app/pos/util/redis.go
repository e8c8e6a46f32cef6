package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rostipos/internal/app/pos/entity"
	"rostipos/pkg/logger"
	"rostipos/pkg/metrics"
)

const (
	categoriasCacheKey    = "pos:categorias"
	estadisticasCacheKey  = "pos:estadisticas"
	serviceNameForMetrics = "pos"
)

// ErrCacheMiss is returned when the requested key is not in the cache.
var ErrCacheMiss = errors.New("cache miss")

type redisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection with a ping.
func NewRedisCache(addr, password string, db int) (RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info().Str("addr", addr).Msg("Connected to Redis")
	return &redisCache{client: client}, nil
}

func (r *redisCache) SetCategorias(ctx context.Context, categorias []entity.Categoria, ttl time.Duration) error {
	timer := metrics.NewRedisTimer(serviceNameForMetrics, metrics.RedisOpSet)
	data, err := json.Marshal(categorias)
	if err != nil {
		timer.ObserveDuration()
		return fmt.Errorf("failed to marshal categorias: %w", err)
	}

	err = r.client.Set(ctx, categoriasCacheKey, data, ttl).Err()
	timer.ObserveDuration()
	if err != nil {
		metrics.RecordRedisError(serviceNameForMetrics, metrics.RedisOpSet)
		return fmt.Errorf("failed to cache categorias: %w", err)
	}
	return nil
}

func (r *redisCache) GetCategorias(ctx context.Context) ([]entity.Categoria, error) {
	timer := metrics.NewRedisTimer(serviceNameForMetrics, metrics.RedisOpGet)
	data, err := r.client.Get(ctx, categoriasCacheKey).Bytes()
	timer.ObserveDuration()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheMiss(serviceNameForMetrics, "categorias")
			return nil, ErrCacheMiss
		}
		metrics.RecordRedisError(serviceNameForMetrics, metrics.RedisOpGet)
		return nil, fmt.Errorf("failed to get categorias from cache: %w", err)
	}

	var categorias []entity.Categoria
	if err := json.Unmarshal(data, &categorias); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached categorias: %w", err)
	}

	metrics.RecordCacheHit(serviceNameForMetrics, "categorias")
	return categorias, nil
}

func (r *redisCache) DeleteCategorias(ctx context.Context) error {
	timer := metrics.NewRedisTimer(serviceNameForMetrics, metrics.RedisOpDel)
	err := r.client.Del(ctx, categoriasCacheKey).Err()
	timer.ObserveDuration()
	if err != nil {
		metrics.RecordRedisError(serviceNameForMetrics, metrics.RedisOpDel)
		return fmt.Errorf("failed to invalidate categorias cache: %w", err)
	}
	return nil
}

func (r *redisCache) SetEstadisticas(ctx context.Context, stats *entity.Estadisticas, ttl time.Duration) error {
	timer := metrics.NewRedisTimer(serviceNameForMetrics, metrics.RedisOpSet)
	data, err := json.Marshal(stats)
	if err != nil {
		timer.ObserveDuration()
		return fmt.Errorf("failed to marshal estadisticas: %w", err)
	}

	err = r.client.Set(ctx, estadisticasCacheKey, data, ttl).Err()
	timer.ObserveDuration()
	if err != nil {
		metrics.RecordRedisError(serviceNameForMetrics, metrics.RedisOpSet)
		return fmt.Errorf("failed to cache estadisticas: %w", err)
	}
	return nil
}

func (r *redisCache) GetEstadisticas(ctx context.Context) (*entity.Estadisticas, error) {
	timer := metrics.NewRedisTimer(serviceNameForMetrics, metrics.RedisOpGet)
	data, err := r.client.Get(ctx, estadisticasCacheKey).Bytes()
	timer.ObserveDuration()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheMiss(serviceNameForMetrics, "estadisticas")
			return nil, ErrCacheMiss
		}
		metrics.RecordRedisError(serviceNameForMetrics, metrics.RedisOpGet)
		return nil, fmt.Errorf("failed to get estadisticas from cache: %w", err)
	}

	var stats entity.Estadisticas
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached estadisticas: %w", err)
	}

	metrics.RecordCacheHit(serviceNameForMetrics, "estadisticas")
	return &stats, nil
}

func (r *redisCache) DeleteEstadisticas(ctx context.Context) error {
	timer := metrics.NewRedisTimer(serviceNameForMetrics, metrics.RedisOpDel)
	err := r.client.Del(ctx, estadisticasCacheKey).Err()
	timer.ObserveDuration()
	if err != nil {
		metrics.RecordRedisError(serviceNameForMetrics, metrics.RedisOpDel)
		return fmt.Errorf("failed to invalidate estadisticas cache: %w", err)
	}
	return nil
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
