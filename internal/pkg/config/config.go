package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB/Redis connection, etc.)
// - default: Values common across all environments (TTLs, pool sizes, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	DB      DBConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Seckill SeckillConfig
	Log     LogConfig
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

type CacheConfig struct {
	NullTTL        time.Duration `envconfig:"CACHE_NULL_TTL" default:"2m"`
	RebuildWorkers int           `envconfig:"CACHE_REBUILD_WORKERS" default:"10"`
	RebuildLockTTL time.Duration `envconfig:"CACHE_REBUILD_LOCK_TTL" default:"10s"`
}

type SeckillConfig struct {
	QueueCapacity int           `envconfig:"SECKILL_QUEUE_CAPACITY" default:"1048576"`
	BlockOnFull   bool          `envconfig:"SECKILL_QUEUE_BLOCK_ON_FULL" default:"false"`
	UserLockTTL   time.Duration `envconfig:"SECKILL_USER_LOCK_TTL" default:"10s"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Addr:     "localhost:16380", // Test Redis port
			PoolSize: 10,
		},
		Cache: CacheConfig{
			NullTTL:        2 * time.Minute,
			RebuildWorkers: 2,
			RebuildLockTTL: 10 * time.Second,
		},
		Seckill: SeckillConfig{
			QueueCapacity: 128,
			UserLockTTL:   10 * time.Second,
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
	}
}
