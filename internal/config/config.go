// Package config resolves the release tool's settings: embedded defaults,
// an optional YAML file, then NEOMDB_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"neomdb-deploy/internal/assets"
)

type Component struct {
	Path       string `yaml:"path"`
	Dockerfile string `yaml:"dockerfile,omitempty"`
	Target     string `yaml:"target,omitempty"`
	Pull       bool   `yaml:"pull,omitempty"`
	NoCache    bool   `yaml:"no_cache,omitempty"`
}

type Compose struct {
	File    string `yaml:"file"`
	EnvFile string `yaml:"env_file"`
	Dir     string `yaml:"dir"`
}

type Binaries struct {
	Docker  string `yaml:"docker"`
	Compose string `yaml:"compose"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Registry credentials never come from YAML.
type Registry struct {
	User     string `yaml:"-"`
	Password string `yaml:"-"`
}

type Config struct {
	Namespace  string               `yaml:"namespace"`
	Components map[string]Component `yaml:"components"`
	Compose    Compose              `yaml:"compose"`
	Binaries   Binaries             `yaml:"binaries"`
	Log        Log                  `yaml:"log"`
	DryRun     bool                 `yaml:"dry_run"`
	Registry   Registry             `yaml:"-"`
}

// LoadDotEnv loads local overrides; a missing file is not an error.
func LoadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
		}
	}
}

// Load builds a Config. path may be empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := decode(assets.DefaultConfig(), cfg); err != nil {
		return nil, fmt.Errorf("embedded defaults: %w", err)
	}

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Namespace, "NEOMDB_NAMESPACE")
	setComponentPath(cfg, "client", "NEOMDB_CLIENT_PATH")
	setComponentPath(cfg, "server", "NEOMDB_SERVER_PATH")
	setString(&cfg.Compose.File, "NEOMDB_COMPOSE_FILE")
	setString(&cfg.Compose.EnvFile, "NEOMDB_COMPOSE_ENV_FILE")
	setString(&cfg.Compose.Dir, "NEOMDB_COMPOSE_DIR")
	setString(&cfg.Binaries.Docker, "NEOMDB_DOCKER_BIN")
	setString(&cfg.Binaries.Compose, "NEOMDB_COMPOSE_BIN")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Registry.User, "NEOMDB_REGISTRY_USER")
	setString(&cfg.Registry.Password, "NEOMDB_REGISTRY_PASSWORD")
	if v := strings.TrimSpace(os.Getenv("NEOMDB_DRY_RUN")); v != "" {
		cfg.DryRun = v == "true" || v == "1"
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setComponentPath(cfg *Config, name, key string) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	if cfg.Components == nil {
		cfg.Components = map[string]Component{}
	}
	c := cfg.Components[name]
	c.Path = v
	cfg.Components[name] = c
}

// Validate checks the fields every run depends on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Namespace) == "" {
		return fmt.Errorf("namespace is empty")
	}
	for _, name := range []string{"client", "server"} {
		if strings.TrimSpace(c.Components[name].Path) == "" {
			return fmt.Errorf("components.%s.path is empty", name)
		}
	}
	if strings.TrimSpace(c.Compose.File) == "" {
		return fmt.Errorf("compose.file is empty")
	}
	return nil
}
