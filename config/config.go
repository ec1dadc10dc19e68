package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Collaborators
	Insurance InsuranceConfig
	Knowledge KnowledgeConfig

	// State
	Session SessionConfig

	// Admin surface (/ingest)
	Admin AdminConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// InsuranceConfig points at the insurance backend REST API and carries
// the service identity used for the login exchange.
type InsuranceConfig struct {
	URL             string
	ServiceEmail    string
	ServicePassword string
	Timeout         time.Duration
}

// KnowledgeConfig points at the knowledge search service.
type KnowledgeConfig struct {
	URL     string
	Timeout time.Duration
}

// Session store backends.
const (
	SessionBackendMemory = "memory"
	SessionBackendSQLite = "sqlite"
)

// SessionConfig selects and sizes the session store backend.
type SessionConfig struct {
	Backend    string // "memory" or "sqlite"
	Capacity   int
	TTL        time.Duration
	SQLitePath string
}

type AdminConfig struct {
	SharedSecret    string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Insurance backend
	cfg.Insurance.URL = viper.GetString("insurance.url")
	cfg.Insurance.ServiceEmail = viper.GetString("insurance.service_email")
	cfg.Insurance.ServicePassword = viper.GetString("insurance.service_password")
	cfg.Insurance.Timeout = viper.GetDuration("insurance.timeout")
	if u := viper.GetString("insurance_api_url"); u != "" {
		cfg.Insurance.URL = u
	}
	if email := viper.GetString("orch_service_email"); email != "" {
		cfg.Insurance.ServiceEmail = email
	}
	if password := viper.GetString("orch_service_password"); password != "" {
		cfg.Insurance.ServicePassword = password
	}

	// Knowledge search service
	cfg.Knowledge.URL = viper.GetString("knowledge.url")
	cfg.Knowledge.Timeout = viper.GetDuration("knowledge.timeout")
	if u := viper.GetString("knowledge_api_url"); u != "" {
		cfg.Knowledge.URL = u
	}

	// Session store
	cfg.Session.Backend = viper.GetString("session.backend")
	cfg.Session.Capacity = viper.GetInt("session.capacity")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.SQLitePath = viper.GetString("session.sqlite_path")
	if cfg.Session.Backend != SessionBackendMemory && cfg.Session.Backend != SessionBackendSQLite {
		return nil, fmt.Errorf("invalid session backend %q (want memory or sqlite)", cfg.Session.Backend)
	}

	// Admin surface
	cfg.Admin.SharedSecret = viper.GetString("admin.shared_secret")
	cfg.Admin.RateLimitPerMin = viper.GetInt("admin.rate_limit_per_min")
	if secret := viper.GetString("admin_shared_secret"); secret != "" {
		cfg.Admin.SharedSecret = secret
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("insurance.url", "http://localhost:3000")
	viper.SetDefault("insurance.service_email", "admin@insurance.com")
	viper.SetDefault("insurance.timeout", "10s")
	viper.SetDefault("knowledge.url", "http://localhost:8100")
	viper.SetDefault("knowledge.timeout", "10s")
	viper.SetDefault("session.backend", "memory")
	viper.SetDefault("session.capacity", 10000)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.sqlite_path", "data/sessions.db")
	viper.SetDefault("admin.rate_limit_per_min", 60)
}
