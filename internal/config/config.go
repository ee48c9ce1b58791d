package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port        string `env:"PORT" env-default:"5000"`
	StoreDriver string `env:"STORE_DRIVER" env-default:"mongo"`

	Mongo     MongoConfig
	Token     TokenConfig
	Log       LogConfig
	Minio     MinioConfig
	NATS      NATSConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database string `env:"MONGO_DATABASE" env-default:"retoCart"`
}

type TokenConfig struct {
	Secret string        `env:"ACCESS_TOKEN_SECRET" env-required:"true"`
	TTL    time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"1h"`
}

type LogConfig struct {
	Level     string `env:"LOG_LEVEL" env-default:"info"`
	Encoding  string `env:"LOG_ENCODING" env-default:"json"`
	AccessLog bool   `env:"ACCESS_LOG" env-default:"true"`
}

// MinioConfig is optional; an empty endpoint disables image uploads.
type MinioConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY" env-default:"minioadmin"`
	SecretKey string `env:"MINIO_SECRET_KEY" env-default:"minioadmin"`
	UseSSL    bool   `env:"MINIO_USE_SSL" env-default:"false"`
	Bucket    string `env:"MINIO_BUCKET" env-default:"product-images"`
	PublicURL string `env:"MINIO_PUBLIC_URL"`
}

type NATSConfig struct {
	URL string `env:"NATS_URL"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

// RateLimitConfig bounds requests per client IP on token issuance and user save.
// Max 0 disables limiting.
type RateLimitConfig struct {
	Max    int           `env:"RATE_LIMIT_MAX" env-default:"20"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Token.TTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}
