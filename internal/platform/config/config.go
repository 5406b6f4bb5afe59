package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Cfg is the process-wide configuration, populated by LoadConfig.
var Cfg *Config

// Config mirrors the structure of config.yaml.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Mail     MailConfig     `mapstructure:"mail"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	Mode     string     `mapstructure:"mode"`
	Address  string     `mapstructure:"address"`
	LogLevel string     `mapstructure:"logLevel"`
	Cors     CorsConfig `mapstructure:"cors"`
}

// CorsConfig defines CORS settings.
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig defines database and cache settings.
type DatabaseConfig struct {
	// Driver selects the gorm driver: "sqlite" or "postgres".
	Driver string      `mapstructure:"driver"`
	DSN    string      `mapstructure:"dsn"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// RedisConfig defines the Redis connection.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig defines session token settings.
type AuthConfig struct {
	JWTSecret       string `mapstructure:"jwtSecret"`
	TokenTTLMinutes int    `mapstructure:"tokenTTLMinutes"`
}

// GeminiConfig defines the generative text endpoint.
type GeminiConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"apiKey"`
}

// MailConfig defines the transactional email provider.
type MailConfig struct {
	ResendAPIKey string `mapstructure:"resendApiKey"`
	From         string `mapstructure:"from"`
	AppURL       string `mapstructure:"appUrl"`
}

// LoadConfig locates, loads and parses config.yaml, with environment
// variables overriding file values (SERVER_ADDRESS, DATABASE_DSN, ...).
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.logLevel", "info")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "wyshdrop.db")
	// The empty default registers the key so AUTH_JWTSECRET reaches
	// Unmarshal; the value itself is validated below.
	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.tokenTTLMinutes", 7*24*60)
	v.SetDefault("gemini.endpoint", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("mail.from", "WyshDrop <onboarding@resend.dev>")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, env and defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Session tokens are HMAC-signed with this secret; an empty key makes
	// them forgeable.
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwtSecret is required: set it in config.yaml or via AUTH_JWTSECRET")
	}

	Cfg = &cfg
	return Cfg, nil
}
