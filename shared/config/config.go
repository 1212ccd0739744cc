package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/itchan-dev/hackorsnooze/shared/validation"
	"gopkg.in/yaml.v2"
)

const envPrefix = "SNOOZE_"

type Config struct {
	Client Client `yaml:"client" envPrefix:"CLIENT_"`
	Server Server `yaml:"server" envPrefix:"SERVER_"`
	Log    Log    `yaml:"log" envPrefix:"LOG_"`
}

type Client struct {
	BaseURL     string        `yaml:"base_url" env:"BASE_URL" validate:"required,http_url"`
	Timeout     time.Duration `yaml:"timeout" env:"TIMEOUT"`
	SessionFile string        `yaml:"session_file" env:"SESSION_FILE"` // empty means the user config dir
}

type Server struct {
	Addr           string        `yaml:"addr" env:"ADDR"`
	JwtKey         string        `yaml:"jwt_key" env:"JWT_KEY"`
	JwtTTL         time.Duration `yaml:"jwt_ttl" env:"JWT_TTL"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" envSeparator:","`
	HTTPS          bool          `yaml:"https" env:"HTTPS"` // served behind TLS, enables HSTS
}

type Log struct {
	Level string `yaml:"level" env:"LEVEL"`
	JSON  bool   `yaml:"json" env:"JSON"`
}

// Default is used for every field the file and environment leave unset.
func Default() Config {
	return Config{
		Client: Client{
			BaseURL: "https://hack-or-snooze-v3.herokuapp.com",
			Timeout: 10 * time.Second,
		},
		Server: Server{
			Addr:           ":8080",
			JwtTTL:         30 * 24 * time.Hour,
			AllowedOrigins: []string{"*"},
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the yaml file at path (if path is not empty), then applies
// SNOOZE_* environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("can't read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("can't unmarshal config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("can't parse environment: %w", err)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func MustLoad(path string) *Config {
	// check if file exists
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			panic("config file does not exist: " + path)
		}
	}
	cfg, err := Load(path)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
