package redis

import (
	"context"
	"desk/config"
	"desk/shared/constant"
	"net"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary Redis node backing the rate limiter. It returns
// nil when the limiter is off, no host is configured or the node does not
// answer; the limiter then lets every request through.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	if !config.App.RateLimiter.Enable || primary.Host == constant.Empty {
		log.Debug().Msg("Rate limiter disabled, skipping Redis connection")

		return nil
	}

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Error().Err(err).Str("host", primary.Host).Msg("Failed to connect to Redis, rate limiting disabled")

		_ = client.Close()

		return nil
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
