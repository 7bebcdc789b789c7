package config

import (
	"context"
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"DATABASE_URL,  default=mongodb://localhost:27017"`
	Database string `env:"DATABASE_NAME, default=nujjum"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// DatabaseURLSet and DatabaseNameSet report raw env presence for the
// diagnostic endpoint, which distinguishes "defaulted" from "configured".

func DatabaseURLSet() bool {
	_, ok := os.LookupEnv("DATABASE_URL")
	return ok
}

func DatabaseNameSet() bool {
	_, ok := os.LookupEnv("DATABASE_NAME")
	return ok
}
