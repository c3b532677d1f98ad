package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iudanet/formsync/pkg/api"
)

// MinSecretLen минимальная длина секрета подписи токенов
const MinSecretLen = 16

// Server настройки tablestore
type Server struct {
	Addr            string        `mapstructure:"addr"`
	DBPath          string        `mapstructure:"db"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFile         string        `mapstructure:"log_file"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	DisabledOps     []string      `mapstructure:"disabled_ops"`
	TokenTTL        time.Duration `mapstructure:"token_ttl"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       RateLimit     `mapstructure:"rate_limit"`
	LogMaxSizeMB    int           `mapstructure:"log_max_size_mb"`
	LogMaxBackups   int           `mapstructure:"log_max_backups"`
	Metrics         bool          `mapstructure:"metrics"`
}

// RateLimit ограничение числа запросов с одного адреса
type RateLimit struct {
	Window   time.Duration `mapstructure:"window"`
	Requests int           `mapstructure:"requests"`
}

// SetServerDefaults задает значения по умолчанию
func SetServerDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("db", "tablestore.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 50)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_ttl", 0)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("disabled_ops", []string{})
	v.SetDefault("rate_limit.requests", 120)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("metrics", true)
}

// LoadServer собирает и проверяет настройки сервера
func LoadServer(v *viper.Viper) (*Server, error) {
	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode server config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет значения
func (c *Server) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path cannot be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if len(c.JWTSecret) < MinSecretLen {
		return fmt.Errorf("jwt_secret must be at least %d characters", MinSecretLen)
	}
	if c.TokenTTL < 0 {
		return fmt.Errorf("token_ttl cannot be negative")
	}
	if c.RateLimit.Requests < 0 || (c.RateLimit.Requests > 0 && c.RateLimit.Window <= 0) {
		return fmt.Errorf("rate_limit needs a positive window")
	}
	for _, op := range c.DisabledOps {
		if !api.KnownOperation(strings.TrimSpace(op)) {
			return fmt.Errorf("unknown operation %q in disabled_ops", op)
		}
	}
	return nil
}
