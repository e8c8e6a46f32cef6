package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every setting of the POS backend: HTTP server, the
// SQLite database file, optional Redis cache, optional Kafka events
// and the nightly report job.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Worker   WorkerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig points at the single SQLite database file. Everything
// (catalog, pedidos, statistics) lives in this one file.
type DatabaseConfig struct {
	Path string
}

// RedisConfig enables the cache for categorias and estadisticas.
// When disabled the service reads straight from SQLite.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// KafkaConfig enables the pedido lifecycle events for the kitchen display.
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// WorkerConfig drives the nightly sales summary job.
type WorkerConfig struct {
	ReportCron string
}

type LogConfig struct {
	Level string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "restaurante.db"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "pedido_events"),
		},
		Worker: WorkerConfig{
			// Every night at 23:30, after closing.
			ReportCron: getEnv("REPORT_CRON", "30 23 * * *"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// Address returns host:port for the HTTP server.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Address returns host:port for the Redis connection.
func (c *RedisConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
