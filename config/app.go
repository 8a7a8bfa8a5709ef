package config

type App struct {
	Port          string `env:"APP_PORT" env-default:"8080"`
	DatabaseURL   string `env:"DATABASE_URL" env-required:"true"`
	JWTSecret     string `env:"JWT_SECRET" env-required:"true"`
	JWTTTLMinutes int    `env:"JWT_TTL_MINUTES" env-default:"1440"`
	Env           string `env:"APP_ENV" env-default:"dev"`
}
