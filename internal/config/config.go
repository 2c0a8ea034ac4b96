package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del clasificador (CLI y API).
type Config struct {
	HTTPPort            string `env:"HTTP_PORT" envDefault:"8080"`
	InputPath           string `env:"INPUT_PATH" envDefault:"resources/test-input.json"`
	OutputDir           string `env:"OUTPUT_DIR" envDefault:"output"`
	DatabaseURL         string `env:"DATABASE_URL"`
	RedisAddr           string `env:"REDIS_ADDR"`
	RedisPassword       string `env:"REDIS_PASSWORD"`
	RedisDB             int    `env:"REDIS_DB" envDefault:"0"`
	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`
	APIKeyHash          string `env:"API_KEY_HASH"`
	RateLimitPerMinute  int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
