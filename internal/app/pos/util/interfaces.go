package util

import (
	"context"
	"time"

	"rostipos/internal/app/pos/entity"
)

// RedisCache caches the categoria list and the estadisticas payload.
// Used for dependency injection and to keep tests free of a live Redis.
type RedisCache interface {
	SetCategorias(ctx context.Context, categorias []entity.Categoria, ttl time.Duration) error
	GetCategorias(ctx context.Context) ([]entity.Categoria, error)
	DeleteCategorias(ctx context.Context) error

	SetEstadisticas(ctx context.Context, stats *entity.Estadisticas, ttl time.Duration) error
	GetEstadisticas(ctx context.Context) (*entity.Estadisticas, error)
	DeleteEstadisticas(ctx context.Context) error

	Close() error
}

// MessagePublisher publishes messages to the kitchen-display topic.
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}
