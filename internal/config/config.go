package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Data source kinds
const (
	DataSourceFile     = "file"
	DataSourcePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type DataConfig struct {
	Source          string
	AttractionsPath string
	DistrictsPath   string
	VisitsEnabled   bool
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StatsCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxBatchSize      int
}

// Load читает конфигурацию из .env и переменных окружения.
// Отсутствие .env не ошибка: в контейнере все приходит из окружения.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile())
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v)
}

func envFile() string {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return path
	}
	return ".env"
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Data: DataConfig{
			Source:          strings.ToLower(strings.TrimSpace(v.GetString("DATA_SOURCE"))),
			AttractionsPath: v.GetString("DATA_ATTRACTIONS_PATH"),
			DistrictsPath:   v.GetString("DATA_DISTRICTS_PATH"),
			VisitsEnabled:   v.GetBool("VISITS_ENABLED"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StatsCacheTTL: time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxBatchSize:      v.GetInt("WORKER_MAX_BATCH_SIZE"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.AllowOrigins == "" {
		cfg.Server.AllowOrigins = "http://localhost:3000,http://localhost:5173"
	}
	if cfg.Data.Source == "" {
		cfg.Data.Source = DataSourceFile
	}
	if cfg.Data.AttractionsPath == "" {
		cfg.Data.AttractionsPath = "data/attractions.json"
	}
	if cfg.Data.DistrictsPath == "" {
		cfg.Data.DistrictsPath = "data/districts.geojson"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 24 * time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "statistics-refresh-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxBatchSize == 0 {
		cfg.Worker.MaxBatchSize = 20
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.Data.Source {
	case DataSourceFile, DataSourcePostgres:
	default:
		return fmt.Errorf("unsupported DATA_SOURCE %q (want %q or %q)", c.Data.Source, DataSourceFile, DataSourcePostgres)
	}

	if c.NeedsDatabase() && c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required when DATA_SOURCE=postgres or VISITS_ENABLED=true")
	}
	if c.Worker.Enabled && !c.Redis.Enabled {
		return fmt.Errorf("WORKER_ENABLED requires REDIS_ENABLED")
	}

	return nil
}

// NeedsDatabase - нужна ли основная база данных
func (c *Config) NeedsDatabase() bool {
	return c.Data.Source == DataSourcePostgres || c.Data.VisitsEnabled
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения к PostgreSQL, sslmode по умолчанию disable
func (c *DatabaseConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		sslMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
