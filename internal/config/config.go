package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API      APIConfig      `yaml:"api"`
	Sampling SamplingConfig `yaml:"sampling"`
	Server   ServerConfig   `yaml:"server"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Schedule ScheduleConfig `yaml:"schedule"`
	LogLevel string         `yaml:"log_level"`
}

type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

type SamplingConfig struct {
	PerPage int         `yaml:"per_page"`
	Sort    string      `yaml:"sort"`
	MinYear int         `yaml:"min_year"`
	MaxYear int         `yaml:"max_year"`
	Retry   RetryConfig `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// RabbitMQConfig with an empty URL disables pick publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

// ScheduleConfig years of 0 fall back to the sampling bounds.
type ScheduleConfig struct {
	Interval  time.Duration `yaml:"interval"`
	StartYear int           `yaml:"start_year"`
	EndYear   int           `yaml:"end_year"`
}

// Load reads the YAML file at path after expanding environment variables.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	if cfg.Sampling.MinYear > cfg.Sampling.MaxYear {
		return nil, fmt.Errorf("invalid sampling bounds: min_year %d > max_year %d",
			cfg.Sampling.MinYear, cfg.Sampling.MaxYear)
	}

	if cfg.Schedule.Interval < 0 {
		return nil, fmt.Errorf("invalid schedule interval: %s", cfg.Schedule.Interval)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://graphql.anilist.co"
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = "AnimePicker/1.0"
	}
	if c.Sampling.PerPage == 0 {
		c.Sampling.PerPage = 50
	}
	if c.Sampling.Sort == "" {
		c.Sampling.Sort = "POPULARITY_DESC"
	}
	if c.Sampling.MinYear == 0 {
		c.Sampling.MinYear = 1960
	}
	if c.Sampling.MaxYear == 0 {
		c.Sampling.MaxYear = 2025
	}
	if c.Sampling.Retry.MaxAttempts == 0 {
		c.Sampling.Retry.MaxAttempts = 5
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "anime_picker"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "picks"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "anime_picks"
	}
	if c.Schedule.Interval == 0 {
		c.Schedule.Interval = 24 * time.Hour
	}
	if c.Schedule.StartYear == 0 {
		c.Schedule.StartYear = c.Sampling.MinYear
	}
	if c.Schedule.EndYear == 0 {
		c.Schedule.EndYear = c.Sampling.MaxYear
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
