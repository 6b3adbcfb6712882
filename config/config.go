package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Players  PlayersConfig  `mapstructure:"players"`
	Matches  MatchesConfig  `mapstructure:"matches"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	URL    string `mapstructure:"url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// PlayersConfig toggles optional player rules. UniqueShirtNo is off unless
// explicitly enabled.
type PlayersConfig struct {
	UniqueShirtNo bool `mapstructure:"unique_shirt_no"`
}

type MatchesConfig struct {
	PerPage int `mapstructure:"per_page"`
}

// Load reads configuration from the environment, falling back to an optional
// .env file for keys the environment does not set.
func Load() (*Config, error) {
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "postgresql://postgres@localhost:5432/cricket")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("players.unique_shirt_no", false)
	v.SetDefault("matches.per_page", 2)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"server.port",
		"server.shutdown_timeout",
		"database.driver",
		"database.url",
		"log.level",
		"log.pretty",
		"players.unique_shirt_no",
		"matches.per_page",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

func (c Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Database.URL == "" {
		return errors.New("database.url is required")
	}
	if c.Matches.PerPage < 1 {
		return errors.New("matches.per_page must be at least 1")
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + c.Server.Port
}
