package realtime

import (
	"context"

	"github.com/equiprofile/equiprofile/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newPublisher(lc fx.Lifecycle, cfg config.Config, hub *Hub, log *zap.Logger) Publisher {
	if cfg.RedisAddr == "" {
		return hub
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	bridge := NewBridge(hub, client, log)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return err
			}
			bridge.Start()
			log.Info("realtime bridge connected", zap.String("addr", cfg.RedisAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			bridge.Stop()
			return client.Close()
		},
	})

	return bridge
}

var Module = fx.Module("realtime",
	fx.Provide(NewHub),
	fx.Provide(newPublisher),
)
