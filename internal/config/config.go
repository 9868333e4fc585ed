package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mcoot/edgeguard/internal/model"
	"github.com/mcoot/edgeguard/internal/services/strategy"
)

// EnvPrefix prefixes every environment override, e.g. EDGEGUARD_LOG_LEVEL
const EnvPrefix = "EDGEGUARD"

// Settings is the fully resolved bot configuration
type Settings struct {
	Log      LogSettings      `mapstructure:"log"`
	Strategy StrategySettings `mapstructure:"strategy"`
	Storage  StorageSettings  `mapstructure:"storage"`
	Status   StatusSettings   `mapstructure:"status"`

	// Server and Output are used by the history client commands
	Server string `mapstructure:"server"`
	Output string `mapstructure:"output"`
}

// LogSettings controls the stderr logger
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StrategySettings selects the defence layout and tunes the attack step
type StrategySettings struct {
	Layout          string         `mapstructure:"layout"`
	AttackThreshold float64        `mapstructure:"attackThreshold"`
	AttackGate      string         `mapstructure:"attackGate"`
	Launch          LaunchSettings `mapstructure:"launch"`
}

// LaunchSettings is the attack deploy cell
type LaunchSettings struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`
}

// StorageSettings selects the turn history backend
type StorageSettings struct {
	Type  string        `mapstructure:"type"`
	Redis RedisSettings `mapstructure:"redis"`
}

// RedisSettings holds redis history settings
type RedisSettings struct {
	URL string        `mapstructure:"url"`
	TTL time.Duration `mapstructure:"ttl"`
}

// StatusSettings controls the read-only status API. An empty Addr disables it.
type StatusSettings struct {
	Addr string `mapstructure:"addr"`
}

// New returns a viper instance with defaults and environment overrides set
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("strategy.layout", strategy.LayoutEdges)
	v.SetDefault("strategy.attackThreshold", strategy.DefaultThreshold)
	v.SetDefault("strategy.attackGate", strategy.DefaultAttackGate)
	v.SetDefault("strategy.launch.x", strategy.DefaultLaunch.X)
	v.SetDefault("strategy.launch.y", strategy.DefaultLaunch.Y)

	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.redis.url", "")
	v.SetDefault("storage.redis.ttl", "24h")

	v.SetDefault("status.addr", "")

	v.SetDefault("server", "http://localhost:8089")
	v.SetDefault("output", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file and decodes v into Settings.
// With an empty path, edgeguard.yaml in the working directory is used if present.
func Load(v *viper.Viper, path string) (Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("edgeguard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks cross-field constraints viper cannot express
func (s Settings) Validate() error {
	switch s.Storage.Type {
	case "memory":
	case "redis":
		if s.Storage.Redis.URL == "" {
			return errors.New("storage.redis.url required when storage.type is redis")
		}
	default:
		return fmt.Errorf("invalid storage.type %q: must be 'memory' or 'redis'", s.Storage.Type)
	}
	if _, err := strategy.LayoutByName(s.Strategy.Layout); err != nil {
		return err
	}
	if _, err := strategy.CompileGate(s.Strategy.AttackGate); err != nil {
		return err
	}
	if _, err := parseLevel(s.Log.Level); err != nil {
		return err
	}
	if s.Log.Format != "json" && s.Log.Format != "text" {
		return fmt.Errorf("invalid log.format %q: must be 'json' or 'text'", s.Log.Format)
	}
	return nil
}

// Options converts strategy settings into pipeline options
func (s StrategySettings) Options() strategy.Options {
	return strategy.Options{
		Layout: s.Layout,
		Attack: strategy.AttackOptions{
			Threshold: s.AttackThreshold,
			Launch:    model.At(s.Launch.X, s.Launch.Y),
			Gate:      s.AttackGate,
		},
	}
}

// NewLogger builds the process logger writing to w
func (l LogSettings) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", s, err)
	}
	return level, nil
}
