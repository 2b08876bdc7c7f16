package config

import (
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string `yaml:"env" env:"LESSONFLOW_ENV" env-default:"local"`
	OpenAI struct {
		ApiKey      string        `yaml:"api_key" env:"OPENAI_API_KEY" env-default:""`
		BaseURL     string        `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:""`
		Model       string        `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o"`
		Temperature float32       `yaml:"temperature" env-default:"0.7"`
		MaxTokens   int           `yaml:"max_tokens" env-default:"4000"`
		Timeout     time.Duration `yaml:"timeout" env-default:"300s"`
	} `yaml:"openai"`
	Listen struct {
		BindIP            string        `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port              string        `yaml:"port" env-default:"9100"`
		GenerationTimeout time.Duration `yaml:"generation_timeout" env-default:"300s"`
	} `yaml:"listen"`
	Session struct {
		Backend string        `yaml:"backend" env-default:"memory"`
		TTL     time.Duration `yaml:"ttl" env-default:"24h"`
	} `yaml:"session"`
	Redis struct {
		Addr     string `yaml:"addr" env:"LESSONFLOW_REDIS_ADDR" env-default:"127.0.0.1:6379"`
		Password string `yaml:"password" env:"LESSONFLOW_REDIS_PASSWORD" env-default:""`
		DB       int    `yaml:"db" env-default:"0"`
	} `yaml:"redis"`
	Pandoc struct {
		Binary    string `yaml:"binary" env-default:"pandoc"`
		PDFEngine string `yaml:"pdf_engine" env-default:"xelatex"`
	} `yaml:"pandoc"`
}

const (
	SessionMemory = "memory"
	SessionRedis  = "redis"
)

// LogLevel is debug for local and dev environments, info otherwise.
func (c *Config) LogLevel() slog.Level {
	switch c.Env {
	case "local", "dev":
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case SessionMemory, SessionRedis:
	default:
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}
	if c.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("openai.max_tokens must be positive, got %d", c.OpenAI.MaxTokens)
	}
	return nil
}

func Load(path string) (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("%w; %s", err, desc)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	once.Do(func() {
		var err error
		instance, err = Load(path)
		if err != nil {
			log.Fatal(err)
		}
	})
	return instance
}
