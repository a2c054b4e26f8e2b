// Package redis contiene el cliente Redis y la caché de roles.
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/auth-service/pkg/config"
)

// NewClient crea el cliente con timeouts cortos: la caché nunca debe frenar una petición.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// Ping verifica conectividad.
func Ping(ctx context.Context, c goredis.Cmdable) error {
	return c.Ping(ctx).Err()
}
