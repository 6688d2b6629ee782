package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ClickHouse holds the catalog connection settings.
type ClickHouse struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	// TLS configuration
	Secure     bool   // Enable TLS
	SkipVerify bool   // Skip TLS certificate verification
	CertPath   string // Path to client certificate file
	KeyPath    string // Path to client key file
	CAPath     string // Path to CA certificate file
	ServerName string // Server name for certificate verification
}

// Config holds all configuration for the application.
type Config struct {
	ClickHouse ClickHouse

	Server struct {
		Addr string
		Mode string
	}

	// How long a catalog snapshot stays fresh before the cache refetches.
	SnapshotTTL time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.ClickHouse.Host = getEnv("CLICKHOUSE_HOST", "localhost")

	portStr := getEnv("CLICKHOUSE_PORT", "9000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CLICKHOUSE_PORT: %w", err)
	}
	cfg.ClickHouse.Port = port

	cfg.ClickHouse.User = getEnv("CLICKHOUSE_USER", "default")
	cfg.ClickHouse.Password = getEnv("CLICKHOUSE_PASSWORD", "")
	cfg.ClickHouse.Database = getEnv("CLICKHOUSE_DATABASE", "default")

	cfg.ClickHouse.Secure = getEnvAsBool("CLICKHOUSE_SECURE", false)
	cfg.ClickHouse.SkipVerify = getEnvAsBool("CLICKHOUSE_SKIP_VERIFY", false)
	cfg.ClickHouse.CertPath = getEnv("CLICKHOUSE_CERT_PATH", "")
	cfg.ClickHouse.KeyPath = getEnv("CLICKHOUSE_KEY_PATH", "")
	cfg.ClickHouse.CAPath = getEnv("CLICKHOUSE_CA_PATH", "")
	cfg.ClickHouse.ServerName = getEnv("CLICKHOUSE_SERVER_NAME", "")

	cfg.Server.Addr = getEnv("SERVER_ADDR", ":8080")
	cfg.Server.Mode = getEnv("GIN_MODE", "debug")

	ttlStr := getEnv("SNAPSHOT_TTL", "5m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_TTL: %w", err)
	}
	cfg.SnapshotTTL = ttl

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
