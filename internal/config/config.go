package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Значения по умолчанию
const (
	defaultPort            = "5000"
	defaultGRPCPort        = "50052"
	defaultStaticDir       = "."
	defaultIndexFile       = "index.html"
	defaultShutdownTimeout = 10 * time.Second
)

// Config настройки сервиса
type Config struct {
	Port            string
	GRPCPort        string
	StaticDir       string
	IndexFile       string
	ShutdownTimeout time.Duration
}

// loadDotenv подгружает .env, если он есть. Переменные окружения имеют приоритет.
var loadDotenv = func() { _ = godotenv.Load() }

// Load читает конфигурацию из переменных окружения
func Load() (*Config, error) {
	loadDotenv()

	cfg := &Config{
		Port:            envOr("PORT", defaultPort),
		GRPCPort:        envOr("GRPC_PORT", defaultGRPCPort),
		StaticDir:       envOr("STATIC_DIR", defaultStaticDir),
		IndexFile:       envOr("INDEX_FILE", defaultIndexFile),
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if err := validatePort("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if err := validatePort("GRPC_PORT", cfg.GRPCPort); err != nil {
		return nil, err
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	log.Printf("Конфигурация: HTTP порт %s, gRPC порт %s, статика из %s", cfg.Port, cfg.GRPCPort, cfg.StaticDir)
	return cfg, nil
}

// HTTPAddr адрес HTTP-сервера
func (c *Config) HTTPAddr() string {
	return ":" + c.Port
}

// GRPCAddr адрес gRPC-сервера
func (c *Config) GRPCAddr() string {
	return ":" + c.GRPCPort
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func validatePort(key, value string) error {
	port, err := strconv.Atoi(value)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid %s %q", key, value)
	}
	return nil
}
