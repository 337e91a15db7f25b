package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	JWT struct {
		Secret        string `yaml:"secret"`
		ExpiryMinutes int    `yaml:"expiryMinutes"`
	} `yaml:"jwt"`

	Uploads struct {
		Dir       string `yaml:"dir"`
		MaxSizeMB int64  `yaml:"maxSizeMB"`
	} `yaml:"uploads"`

	CORS struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`

	// Seed is the bootstrap admin account created on first boot if absent.
	Seed struct {
		UserID   string `yaml:"userId"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"seed"`
}

// LoadConfig reads the configuration file and applies environment overrides
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if cfg.Database.URI == "" {
		return nil, fmt.Errorf("database.uri is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required")
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		cfg.Database.URI = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("ADMIN_ID"); v != "" {
		cfg.Seed.UserID = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Seed.Password = v
	}
	if v := os.Getenv("ADMIN_NAME"); v != "" {
		cfg.Seed.Name = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3001
	}
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "uploads"
	}
	if cfg.Uploads.MaxSizeMB == 0 {
		cfg.Uploads.MaxSizeMB = 5
	}
	if cfg.JWT.ExpiryMinutes == 0 {
		cfg.JWT.ExpiryMinutes = 24 * 60
	}
	if cfg.Seed.Name == "" {
		cfg.Seed.Name = "Admin"
	}
}
