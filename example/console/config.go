package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

type Config struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
}

// loadConfig reads the JSON config. OPENAI_API_KEY wins over the file.
func loadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	conf := &Config{}
	if err = sonic.Unmarshal(raw, conf); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		conf.APIKey = key
	}
	if conf.Model == "" {
		conf.Model = "gpt-4o"
	}
	return conf, nil
}
