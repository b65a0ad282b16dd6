package ratelimit

import (
	"github.com/praneeth8555/dairyadmin/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("rate.limit",
	fx.Provide(provideRedis),
	fx.Provide(NewLocker),
)

// provideRedis returns nil when REDIS_ADDR is unset; locking is then
// disabled rather than failing startup.
func provideRedis(cfg config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info("redis not configured, aggregation locking disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
