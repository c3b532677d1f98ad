package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"

	"github.com/iudanet/formsync/internal/client/connector"
)

// Client настройки formsync
type Client struct {
	Endpoint       string                `mapstructure:"endpoint"`
	DBPath         string                `mapstructure:"db"`
	LogLevel       string                `mapstructure:"log_level"`
	RequestTimeout time.Duration         `mapstructure:"request_timeout"`
	EndpointTTL    time.Duration         `mapstructure:"endpoint_ttl"`
	WatchDebounce  time.Duration         `mapstructure:"watch_debounce"`
	Retry          connector.RetryConfig `mapstructure:"retry"`
}

// SetClientDefaults задает значения по умолчанию
func SetClientDefaults(v *viper.Viper) {
	retry := connector.DefaultRetryConfig()

	v.SetDefault("endpoint", "http://localhost:8080/v1/exec")
	v.SetDefault("db", "formsync.db")
	v.SetDefault("log_level", "warn")
	v.SetDefault("request_timeout", connector.DefaultRequestTimeout)
	v.SetDefault("endpoint_ttl", connector.DefaultEndpointTTL)
	v.SetDefault("watch_debounce", 300*time.Millisecond)
	v.SetDefault("retry.max_attempts", retry.MaxAttempts)
	v.SetDefault("retry.initial_interval", retry.InitialInterval)
	v.SetDefault("retry.max_interval", retry.MaxInterval)
	v.SetDefault("retry.max_retry_after", retry.MaxRetryAfter)
	v.SetDefault("retry.multiplier", retry.Multiplier)
	v.SetDefault("retry.randomization_factor", retry.RandomizationFactor)
}

// LoadClient собирает и проверяет настройки клиента
func LoadClient(v *viper.Viper) (*Client, error) {
	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode client config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет значения
func (c *Client) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q", c.Endpoint)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path cannot be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1")
	}
	if c.Retry.Multiplier < 1 {
		return fmt.Errorf("retry.multiplier must be at least 1")
	}
	if c.Retry.RandomizationFactor < 0 || c.Retry.RandomizationFactor > 1 {
		return fmt.Errorf("retry.randomization_factor must be within [0, 1]")
	}
	return nil
}

// Connector возвращает настройки коннектора
func (c *Client) Connector() connector.Config {
	return connector.Config{
		BaseURL:        c.Endpoint,
		RequestTimeout: c.RequestTimeout,
		EndpointTTL:    c.EndpointTTL,
		Retry:          c.Retry,
	}
}
