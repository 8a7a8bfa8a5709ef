package config

import (
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from the environment. The JWT secret and the
// database DSN have no defaults on purpose: they must be injected.
func Load() App {
	var cfg App
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		slog.Error("config load failed", "err", err)
		panic(err)
	}
	return cfg
}
