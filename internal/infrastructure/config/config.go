package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Store  StoreConfig
	TMDB   TMDBConfig
	Search SearchConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

// StoreConfig selects the key/value backend for the credential store:
// memory, redis, or mongo.
type StoreConfig struct {
	Backend string `env:"STORE_BACKEND, default=memory"`
}

type TMDBConfig struct {
	BaseURL string        `env:"TMDB_BASE_URL, default=https://api.themoviedb.org/3"`
	APIKey  string        `env:"TMDB_API_KEY"`
	Timeout time.Duration `env:"TMDB_TIMEOUT,  default=10s"`
}

type SearchConfig struct {
	DebounceDelay time.Duration `env:"SEARCH_DEBOUNCE,      default=500ms"`
	CountWorkers  int           `env:"SEARCH_COUNT_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=movieflix"`
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
