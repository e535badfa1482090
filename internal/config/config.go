// Package config provides hierarchical configuration loading for codeguide.
// Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for the codeguide API service.
type Config struct {
	App     App     `yaml:"app"`
	Server  Server  `yaml:"server"`
	Content Content `yaml:"content"`
	Cache   Cache   `yaml:"cache"`
	Logging Logging `yaml:"logging"`
	Rate    Rate    `yaml:"rate"`
	OTEL    OTEL    `yaml:"otel"`
}

// App identifies the service in /health and telemetry.
type App struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Server holds HTTP server configuration.
type Server struct {
	Port        string   `yaml:"port"`
	APIPrefix   string   `yaml:"api_prefix"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// Content holds data file configuration.
type Content struct {
	DataDir string `yaml:"data_dir"`
	Watch   bool   `yaml:"watch"` // reload when data files change on disk
}

// Cache holds search cache configuration.
type Cache struct {
	L1MaxSizeMB int64         `yaml:"l1_max_size_mb"` // 0 disables the cache
	TTL         time.Duration `yaml:"ttl"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
	Async   bool   `yaml:"async"`
}

// Rate holds rate limiter configuration.
type Rate struct {
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"`
	MaxIdleTime       time.Duration `yaml:"max_idle_time"`
}

// OTEL holds OpenTelemetry exporter configuration.
type OTEL struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"` // host:port of the OTLP gRPC collector
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// Defaults returns a Config with sensible default values for local development.
func Defaults() Config {
	return Config{
		App: App{
			Name:    "入行 365 代码指南 API",
			Version: "1.0.0",
		},
		Server: Server{
			Port:      "8000",
			APIPrefix: "/api",
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
				"https://ruhang365.cn",
				"https://*.ruhang365.cn",
			},
		},
		Content: Content{
			DataDir: "data",
		},
		Cache: Cache{
			L1MaxSizeMB: 16,
			TTL:         10 * time.Minute,
		},
		Logging: Logging{
			Level:   "info",
			Service: "codeguide-api",
		},
		Rate: Rate{
			RequestsPerSecond: 20,
			Burst:             50,
			CleanupInterval:   5 * time.Minute,
			MaxIdleTime:       10 * time.Minute,
		},
		OTEL: OTEL{
			Endpoint:    "localhost:4317",
			Insecure:    true,
			ServiceName: "codeguide-api",
		},
	}
}
