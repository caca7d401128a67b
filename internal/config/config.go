package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Backend struct {
		URL string
	}
	RateLimit struct {
		PerMinute int
	}
	Session struct {
		TTL time.Duration
	}
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	var config Config

	// Set defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("backend.url", "http://localhost:8000")
	viper.SetDefault("ratelimit.per_minute", 60)
	viper.SetDefault("session.ttl_minutes", 60)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config.Server.Port = viper.GetString("server.port")
	config.Backend.URL = viper.GetString("backend.url")
	config.RateLimit.PerMinute = viper.GetInt("ratelimit.per_minute")
	config.Session.TTL = time.Duration(viper.GetInt("session.ttl_minutes")) * time.Minute

	return &config, nil
}

func (c *Config) ValidateBackend() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if _, err := url.Parse(c.Backend.URL); err != nil {
		return fmt.Errorf("backend.url is not a valid URL: %w", err)
	}
	return nil
}
