package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type ServerConfig struct {
	Server Server `yaml:"server"`
	Pow    Pow    `yaml:"pow"`
	Reward Reward `yaml:"reward"`
	Log    Log    `yaml:"log"`
}

type ClientConfig struct {
	Client    Client    `yaml:"client"`
	Algorithm Algorithm `yaml:"algorithm"`
	Log       Log       `yaml:"log"`
}

// LoadServerConfig reads path (yaml, toml, json or .env), or ./.env when path is empty, and then
// applies environment overrides and defaults.
func LoadServerConfig(path string) (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := load(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadClientConfig(path string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := load(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DotEnvFile is loaded from the working directory when no config path is given. Variables
// already set in the environment are kept.
const DotEnvFile = ".env"

func load(path string, cfg interface{}) error {
	if path == "" {
		if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
		}
	}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return nil
}

func (c *ServerConfig) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Pow.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

func (c *ClientConfig) Validate() error {
	if err := c.Client.Validate(); err != nil {
		return err
	}
	if err := c.Algorithm.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// Usage renders the environment variables a config type understands.
func Usage(cfg interface{}) string {
	text, err := cleanenv.GetDescription(cfg, nil)
	if err != nil {
		return err.Error()
	}
	return text
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
