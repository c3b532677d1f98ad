// Package config loads client and server settings from flags, environment
// variables and an optional config file through viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Префиксы переменных окружения
const (
	ClientEnvPrefix = "FORMSYNC"
	ServerEnvPrefix = "TABLESTORE"
)

// New создает viper с чтением переменных окружения: ключ "retry.max_attempts"
// читается из <PREFIX>_RETRY_MAX_ATTEMPTS
func New(envPrefix string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Bind связывает флаги с ключами: ключ и имя флага совпадают,
// дефис в имени флага соответствует '_' в ключе
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			errs = append(errs, fmt.Errorf("bind flag %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// ReadFile читает файл конфигурации (yaml, json, toml), если путь задан
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// ParseLevel переводит имя уровня в slog.Level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}
