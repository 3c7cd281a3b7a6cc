// Package config loads server settings from defaults, an optional YAML file,
// ARENA_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abrezinsky/arena/internal/logger"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "ARENA"

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Preferences PreferencesConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port          int
	DBPath        string `mapstructure:"db"`
	AdminPassword string `mapstructure:"adminpw"`
	NoAnimate     bool
	NoKeyboard    bool
}

// LogConfig selects the log level and encoder
type LogConfig struct {
	Level string
	Env   string
}

// RedisConfig enables the leaderboard cache when Addr is set
type RedisConfig struct {
	Addr string
	TTL  time.Duration
}

// KafkaConfig enables wallet event publishing when Brokers is set
type KafkaConfig struct {
	Brokers string
	Topic   string
}

// PreferencesConfig locates the preferences file
type PreferencesConfig struct {
	Path string
}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.db", "arena.db")
	v.SetDefault("server.adminpw", "")
	v.SetDefault("server.noanimate", false)
	v.SetDefault("server.nokeyboard", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "local")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.ttl", 30*time.Second)
	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "arena.wallet")
	v.SetDefault("preferences.path", "arena-preferences.yaml")
}

// New returns a viper instance with defaults and environment binding set.
// Flags can be bound to it before Load is called.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env, then configFile (or arena.yaml in the working directory
// when configFile is empty), and decodes v into a Config
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("arena")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that cannot be corrected later
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.DBPath) == "" {
		return errors.New("database path is required")
	}
	if !logger.ValidLevel(c.Log.Level) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Redis.TTL < 0 {
		return errors.New("redis ttl must not be negative")
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
