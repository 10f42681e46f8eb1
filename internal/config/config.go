package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type CatalogConfig struct {
	Env          string `yaml:"env" env:"CATALOG_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	CatalogDB    `yaml:"catalog_db"`
	LogConfig    `yaml:"log_config"`
	RedisCache   `yaml:"redis_cache"`
	KafkaService `yaml:"kafka_service"`
	Metrics      `yaml:"metrics"`
	Background   `yaml:"background"`
}

type HTTPServer struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"15s"`
	CORSOrigins     []string      `yaml:"cors_origins" env:"HTTP_CORS_ORIGINS" env-default:"http://localhost:5173"`
}

type CatalogDB struct {
	Dsn            string `yaml:"dsn" env:"CATALOG_DB_DSN"`
	MaxOpenConns   int    `yaml:"max_open_conns" env-default:"10"`
	AutoMigrate    bool   `yaml:"auto_migrate" env-default:"false"`
	MigrationsPath string `yaml:"migrations_path" env:"CATALOG_MIGRATIONS_PATH"`
	Seed           bool   `yaml:"seed" env:"CATALOG_DB_SEED"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type RedisCache struct {
	Enabled  bool          `yaml:"enabled" env:"REDIS_CACHE_ENABLED" env-default:"false"`
	Addr     string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env-default:"5m"`
}

type KafkaService struct {
	Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"catalog-events"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
	Path    string `yaml:"path" env-default:"/metrics"`
}

type Background struct {
	StatsSchedule string `yaml:"stats_schedule" env:"STATS_SCHEDULE" env-default:"@every 5m"`
}

func (s HTTPServer) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// Load reads the YAML file at configPath; environment variables take precedence.
func Load(configPath string) (*CatalogConfig, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	var cfg CatalogConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if cfg.CatalogDB.Dsn == "" {
		return nil, fmt.Errorf("catalog_db.dsn is required")
	}

	return &cfg, nil
}

func MustLoad() *CatalogConfig {
	// Processing env config variable and file
	configPath := os.Getenv("CATALOG_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("CATALOG_CONFIG_PATH was not found\n")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	return cfg
}
