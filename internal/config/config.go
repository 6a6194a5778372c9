package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	SelfPlay SelfPlay `yaml:"self-play"`
}

type SelfPlay struct {
	Games   int   `yaml:"games" env:"SELF_PLAY_GAMES" env-default:"10"`
	Workers int   `yaml:"workers" env:"SELF_PLAY_WORKERS" env-default:"4"`
	Seed    int64 `yaml:"seed" env:"SELF_PLAY_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file, falling back to
// the environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
