package bootstrap

import (
	"takeout-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		// Sub-configs so components depend only on what they read.
		func(cfg config.Config) config.OrderConfig { return cfg.Order },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	),
)
